// Command table drives the inventory table against a remote store from the
// terminal: list the collection, create/edit rows, and walk the delete
// confirmation flow.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ariefcatur/go-product-table.git/internal/client"
	"github.com/ariefcatur/go-product-table.git/internal/config"
	"github.com/ariefcatur/go-product-table.git/internal/products"
	"github.com/ariefcatur/go-product-table.git/internal/table"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	var (
		create   = flag.Bool("create", false, "create a product from the field flags")
		edit     = flag.Int64("edit", 0, "edit the product with this id")
		del      = flag.Int64("delete", 0, "delete the product with this id (asks for confirmation)")
		bulk     = flag.String("bulk", "", "comma-separated ids to bulk delete (asks for confirmation)")
		name     = flag.String("name", "", "product name")
		price    = flag.Float64("price", 0, "product price")
		category = flag.String("category", "", "product category")
		status   = flag.String("status", string(products.StatusIn), "status code: in|low|out")
		quantity = flag.Int("quantity", 0, "stock quantity")
		rating   = flag.Int("rating", 0, "rating 0-5")
	)
	flag.Parse()

	ctx := context.Background()
	sess := table.NewSession()
	notes := table.NewNotifier(16)
	orch := table.New(client.NewRemoteRepo(cfg.StoreBaseURL), sess, notes)

	if err := orch.Refresh(ctx); err != nil {
		log.Fatalf("refresh: %v", err)
	}

	switch {
	case *create:
		orch.OpenCreate()
		fillBuffer(&sess.Buffer, *name, *price, *category, *status, *quantity, *rating)
		if err := orch.Submit(ctx); err != nil {
			log.Fatalf("create: %v", err)
		}
	case *edit != 0:
		p, ok := findProduct(sess.Items, *edit)
		if !ok {
			log.Fatalf("no product with id %d", *edit)
		}
		orch.OpenEdit(p)
		fillBuffer(&sess.Buffer, *name, *price, *category, *status, *quantity, *rating)
		if err := orch.Submit(ctx); err != nil {
			log.Fatalf("edit: %v", err)
		}
	case *del != 0:
		confirmFlow(ctx, orch, orch.RequestDelete(*del))
	case *bulk != "":
		sess.SetSelection(parseIDs(*bulk))
		confirmFlow(ctx, orch, orch.RequestBulkDelete())
	}

	printTable(sess.Items)
	drainToasts(notes)
}

func fillBuffer(b *table.EditBuffer, name string, price float64, category, status string, quantity, rating int) {
	if name != "" {
		b.SetName(name)
	}
	if price != 0 {
		b.SetPrice(price)
	}
	if category != "" {
		b.SetCategory(category)
	}
	if opt, ok := products.OptionFor(products.StatusCode(status)); ok {
		b.SetStatus(opt)
	}
	if quantity != 0 {
		b.SetQuantity(quantity)
	}
	if rating != 0 {
		b.SetRating(rating)
	}
}

func confirmFlow(ctx context.Context, orch *table.Orchestrator, prompt string) {
	fmt.Printf("%s\n%s [s/n]: ", orch.Session().Gate.Header(), prompt)
	sc := bufio.NewScanner(os.Stdin)
	sc.Scan()
	answer := strings.TrimSpace(strings.ToLower(sc.Text()))
	if answer == "s" || answer == "sim" || answer == "y" {
		if err := orch.ConfirmDelete(ctx); err != nil {
			log.Printf("delete: %v", err)
		}
		return
	}
	orch.CancelDelete()
}

func findProduct(items []products.Product, id int64) (products.Product, bool) {
	for _, p := range items {
		if p.ID == id {
			return p, true
		}
	}
	return products.Product{}, false
}

func parseIDs(s string) []int64 {
	var out []int64
	for _, part := range strings.Split(s, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err == nil {
			out = append(out, id)
		}
	}
	return out
}

func printTable(items []products.Product) {
	fmt.Printf("%-5s %-24s %10s %-16s %9s %-15s %s\n", "ID", "Nome", "Preço", "Categoria", "Qtd", "Status", "Avaliação")
	for _, p := range items {
		fmt.Printf("%-5d %-24s %10.2f %-16s %9d %-15s %d/5\n",
			p.ID, p.Name, p.Price, p.Category, p.Quantity, p.Status.Label(), p.Rating)
	}
}

func drainToasts(n *table.Notifier) {
	for {
		select {
		case t := <-n.Toasts():
			fmt.Printf("[%s] %s: %s\n", t.Severity, t.Summary, t.Detail)
		default:
			return
		}
	}
}
