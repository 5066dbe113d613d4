package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/memtab/memtab/internal/domain/schema"
	"github.com/memtab/memtab/internal/domain/value"
	"github.com/memtab/memtab/internal/logging"
	"github.com/memtab/memtab/internal/query/operations"
	"github.com/memtab/memtab/internal/render"
)

func main() {
	logger, closeFn := logging.SetupLogger()
	defer closeFn()

	slog.SetDefault(logger)
	slog.Info("starting memtab demo")

	fruits := schema.New("fruits", []schema.Column{
		{Name: "id", Kind: value.KindInt},
		{Name: "name", Kind: value.KindText},
		{Name: "price", Kind: value.KindInt},
	})
	mustInsert(fruits, schema.Col("id", value.Int(1)), schema.Col("name", value.Text("apple")), schema.Col("price", value.Int(50)))
	mustInsert(fruits, schema.Col("id", value.Int(2)), schema.Col("name", value.Text("banana")), schema.Col("price", value.Int(100)))
	mustInsert(fruits, schema.Col("id", value.Int(3)), schema.Col("name", value.Text("citrus")), schema.Col("price", value.NullInt()))
	mustInsert(fruits, schema.Col("id", value.Int(4)), schema.Col("name", value.Text("dorian")), schema.Col("price", value.Int(256)))
	mustInsert(fruits, schema.Col("id", value.Int(5)), schema.Col("name", value.Text("elderberries")), schema.Col("price", value.Int(512)))
	mustInsert(fruits, schema.Col("id", value.Int(6)), schema.Col("name", value.Text("figs")), schema.Col("price", value.Int(1024)))
	mustInsert(fruits, schema.Col("id", value.Int(7)), schema.Col("name", value.Text("grapefruit")), schema.Col("price", value.Int(2048)))
	mustInsert(fruits, schema.Col("id", value.Int(8)), schema.Col("name", value.Text("honeydew melon")), schema.Col("price", value.Int(4096)))

	shipments := schema.New("shipments", []schema.Column{
		{Name: "id", Kind: value.KindInt},
		{Name: "date", Kind: value.KindText},
	})
	mustInsert(shipments, schema.Col("id", value.Int(1)), schema.Col("date", value.Text("2019/12/20")))
	mustInsert(shipments, schema.Col("id", value.Int(2)), schema.Col("date", value.Text("2019/12/21")))
	mustInsert(shipments, schema.Col("id", value.Int(3)), schema.Col("date", value.Text("2019/12/22")))
	mustInsert(shipments, schema.Col("id", value.Int(4)), schema.Col("date", value.Text("2019/12/23")))
	mustInsert(shipments, schema.Col("id", value.Int(8)), schema.Col("date", value.Text("2019/12/27")))
	mustInsert(shipments, schema.Col("id", value.Int(13)), schema.Col("date", value.Text("2020/01/01")))

	show("fruits ALL", fruits)

	show("fruits SELECT", operations.Select(fruits, "name"))
	show("fruits SELECT", operations.Select(fruits, "name", "price"))

	show("fruits WHERE <", operations.LessThan(fruits, "id", 10))
	show("fruits WHERE <", operations.LessThan(fruits, "price", 250))

	show("shipments ALL", shipments)

	joined, err := operations.LeftJoin(fruits, shipments, "id")
	if err != nil {
		slog.Error("join failed", "error", err)
		closeFn()
		os.Exit(1)
	}
	show("fruits:shipments LEFT JOIN", joined)
	show("fruits:shipments LEFT JOIN => SELECT", operations.Select(joined, "name", "date"))

	show("fruits WHERE LIKE", operations.Like(fruits, "name", "apple"))
	show("fruits WHERE LIKE", operations.Like(fruits, "name", "______"))
	show("fruits WHERE LIKE", operations.Like(fruits, "name", "%s"))
	show("fruits WHERE LIKE", operations.Like(fruits, "name", "%ri%"))
}

func show(title string, t *schema.Table) {
	fmt.Printf("\n====[ %s ]====\n", title)
	render.Write(os.Stdout, t)
}

func mustInsert(t *schema.Table, entries ...schema.Entry) {
	if err := t.Insert(entries...); err != nil {
		slog.Error("insert failed", "table", t.Name, "error", err)
		os.Exit(1)
	}
}
