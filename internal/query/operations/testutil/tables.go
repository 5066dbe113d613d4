package testutil

import (
	"github.com/memtab/memtab/internal/domain/schema"
	"github.com/memtab/memtab/internal/domain/value"
)

// FruitsTable creates a fruits table with sample data for testing
func FruitsTable() *schema.Table {
	t := schema.New("fruits", []schema.Column{
		{Name: "id", Kind: value.KindInt},
		{Name: "name", Kind: value.KindText},
		{Name: "price", Kind: value.KindInt},
	})
	mustInsert(t, schema.Col("id", value.Int(1)), schema.Col("name", value.Text("apple")), schema.Col("price", value.Int(50)))
	mustInsert(t, schema.Col("id", value.Int(2)), schema.Col("name", value.Text("banana")), schema.Col("price", value.Int(100)))
	mustInsert(t, schema.Col("id", value.Int(3)), schema.Col("name", value.Text("citrus")), schema.Col("price", value.NullInt()))
	mustInsert(t, schema.Col("id", value.Int(4)), schema.Col("name", value.Text("dorian")), schema.Col("price", value.Int(256)))
	mustInsert(t, schema.Col("id", value.Int(5)), schema.Col("name", value.Text("elderberries")), schema.Col("price", value.Int(512)))
	mustInsert(t, schema.Col("id", value.Int(6)), schema.Col("name", value.Text("figs")), schema.Col("price", value.Int(1024)))
	mustInsert(t, schema.Col("id", value.Int(7)), schema.Col("name", value.Text("grapefruit")), schema.Col("price", value.Int(2048)))
	mustInsert(t, schema.Col("id", value.Int(8)), schema.Col("name", value.Text("honeydew melon")), schema.Col("price", value.Int(4096)))
	return t
}

// ShipmentsTable creates a shipments table with sample data for
// testing. Ids 1-4 and 8 overlap FruitsTable; id 13 matches nothing.
func ShipmentsTable() *schema.Table {
	t := schema.New("shipments", []schema.Column{
		{Name: "id", Kind: value.KindInt},
		{Name: "date", Kind: value.KindText},
	})
	mustInsert(t, schema.Col("id", value.Int(1)), schema.Col("date", value.Text("2019/12/20")))
	mustInsert(t, schema.Col("id", value.Int(2)), schema.Col("date", value.Text("2019/12/21")))
	mustInsert(t, schema.Col("id", value.Int(3)), schema.Col("date", value.Text("2019/12/22")))
	mustInsert(t, schema.Col("id", value.Int(4)), schema.Col("date", value.Text("2019/12/23")))
	mustInsert(t, schema.Col("id", value.Int(8)), schema.Col("date", value.Text("2019/12/27")))
	mustInsert(t, schema.Col("id", value.Int(13)), schema.Col("date", value.Text("2020/01/01")))
	return t
}

func mustInsert(t *schema.Table, entries ...schema.Entry) {
	if err := t.Insert(entries...); err != nil {
		panic(err)
	}
}
