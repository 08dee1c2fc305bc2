package menu

type ItemKind string

const (
	ItemPlain   ItemKind = "plain"
	ItemGrouped ItemKind = "grouped"
)

// Item is either a plain dish name or a sub-category holding several dishes.
type Item struct {
	Kind        ItemKind `json:"kind"`
	Name        string   `json:"name,omitempty"`
	Subcategory string   `json:"subcategory,omitempty"`
	Entries     []string `json:"entries,omitempty"`
}

func Plain(name string) Item {
	return Item{Kind: ItemPlain, Name: name}
}

func Grouped(subcategory string, entries []string) Item {
	if entries == nil {
		entries = []string{}
	}
	return Item{Kind: ItemGrouped, Subcategory: subcategory, Entries: entries}
}

func (i Item) IsGrouped() bool {
	return i.Kind == ItemGrouped
}
