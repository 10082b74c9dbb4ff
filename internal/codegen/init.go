package codegen

// DefaultRegistry is the global registry with the six built-in artifact kinds
var DefaultRegistry = NewRegistry()

func init() {
	DefaultRegistry.Register(KindTypeDef, buildTypeDef)
	DefaultRegistry.Register(KindListPage, buildListPage)
	DefaultRegistry.Register(KindDetailPage, buildDetailPage)
	DefaultRegistry.Register(KindListColumns, buildListColumns)
	DefaultRegistry.Register(KindCreateForm, buildCreateForm)
	DefaultRegistry.Register(KindEditForm, buildEditForm)
}
