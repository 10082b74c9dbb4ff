package codegen

// Kind names one generated document per model
type Kind string

const (
	KindTypeDef     Kind = "typeDef"
	KindListPage    Kind = "listPage"
	KindDetailPage  Kind = "detailPage"
	KindListColumns Kind = "listColumns"
	KindCreateForm  Kind = "createForm"
	KindEditForm    Kind = "editForm"
)

// Kinds lists every artifact kind in the order a generation run produces them
var Kinds = []Kind{
	KindTypeDef,
	KindListPage,
	KindDetailPage,
	KindListColumns,
	KindCreateForm,
	KindEditForm,
}

// ArtifactSpec is a request to render one stub: which stub, and what goes in its placeholders.
// It is built fresh for every generation call.
type ArtifactSpec struct {
	Kind         Kind
	TemplateID   string
	Placeholders map[string]string
}

// Artifact is a rendered document
type Artifact struct {
	Kind    Kind
	Content []byte
}

// Options contains the template-set choices of a generation run
type Options struct {
	// UseDialogs selects dialog components for create/edit instead of separate pages
	UseDialogs bool
}
