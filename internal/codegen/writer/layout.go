package writer

import (
	"fmt"
	"path/filepath"

	"github.com/okra-platform/crudgen/internal/codegen"
	"github.com/okra-platform/crudgen/internal/naming"
)

// Layout maps each artifact of a model to its destination path.
//
//	<TypesPath>/<kebab>.d.ts
//	<PagesPath>/<Plural>/index.tsx
//	<PagesPath>/<Plural>/show.tsx
//	<PagesPath>/<Plural>/components/columns.tsx
//	<PagesPath>/<Plural>/components/create-dialog.tsx
//	<PagesPath>/<Plural>/components/edit-dialog.tsx
//
// Without dialogs the forms are pages: <PagesPath>/<Plural>/create.tsx and edit.tsx.
type Layout struct {
	PagesPath  string
	TypesPath  string
	UseDialogs bool
}

// Path returns the destination of kind for the model named by n
func (l Layout) Path(kind codegen.Kind, n naming.Names) (string, error) {
	pageDir := filepath.Join(l.PagesPath, n.Plural)
	componentsDir := filepath.Join(pageDir, "components")

	switch kind {
	case codegen.KindTypeDef:
		return filepath.Join(l.TypesPath, n.Kebab+".d.ts"), nil
	case codegen.KindListPage:
		return filepath.Join(pageDir, "index.tsx"), nil
	case codegen.KindDetailPage:
		return filepath.Join(pageDir, "show.tsx"), nil
	case codegen.KindListColumns:
		return filepath.Join(componentsDir, "columns.tsx"), nil
	case codegen.KindCreateForm:
		if l.UseDialogs {
			return filepath.Join(componentsDir, "create-dialog.tsx"), nil
		}
		return filepath.Join(pageDir, "create.tsx"), nil
	case codegen.KindEditForm:
		if l.UseDialogs {
			return filepath.Join(componentsDir, "edit-dialog.tsx"), nil
		}
		return filepath.Join(pageDir, "edit.tsx"), nil
	}
	return "", fmt.Errorf("no output path for artifact kind %s", kind)
}
