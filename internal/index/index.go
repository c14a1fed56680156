package index

import (
	"github.com/robustls/robustls/internal/model"
	"github.com/robustls/robustls/internal/treestore"
)

// Index is the Symbol Index: the Class Table, Prototype Table, Locale
// Table, and the Parsed-File Map (treestore.Store), each an independent
// concurrent container shared across every core component.
type Index struct {
	Classes    *Table[string, model.ClassRecord]
	Prototypes *Table[model.PrototypeID, model.PrototypeRecord]
	Locales    *Table[string, model.LocaleKey]
	Trees      *treestore.Store
}

// New creates an empty Index.
func New() *Index {
	return &Index{
		Classes: NewTable(
			func(c model.ClassRecord) string { return c.Name },
			func(c model.ClassRecord) string { return c.Definition.Path },
		),
		Prototypes: NewTable(
			func(p model.PrototypeRecord) model.PrototypeID { return p.PrototypeID },
			func(p model.PrototypeRecord) string { return p.Origin },
		),
		Locales: NewTable(
			func(l model.LocaleKey) string { return l.Key },
			func(l model.LocaleKey) string { return l.Origin },
		),
		Trees: treestore.New(),
	}
}
