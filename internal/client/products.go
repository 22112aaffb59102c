// Package client implements products.Repository over the store's REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ariefcatur/go-product-table.git/internal/products"
	"golang.org/x/sync/errgroup"
)

const mainRoute = "/products"

// StoreError is a failed CRUD call against the remote store. It crosses the
// orchestration boundary as a value, never as a panic.
type StoreError struct {
	Op      string
	Status  int
	Message string
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %s (http %d)", e.Op, e.Message, e.Status)
}

type RemoteRepo struct {
	base string
	http *http.Client
}

func NewRemoteRepo(baseURL string) *RemoteRepo {
	return &RemoteRepo{
		base: baseURL,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// List swallows failures: the table renders an empty collection rather than
// surfacing a list error.
func (r *RemoteRepo) List(ctx context.Context) ([]products.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.base+mainRoute, nil)
	if err != nil {
		return []products.Product{}, nil
	}
	resp, err := r.http.Do(req)
	if err != nil {
		slog.Error("list products", "error", err)
		return []products.Product{}, nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		slog.Error("list products", "status", resp.StatusCode)
		return []products.Product{}, nil
	}
	var out []products.Product
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		slog.Error("list products", "error", err)
		return []products.Product{}, nil
	}
	return out, nil
}

func (r *RemoteRepo) Create(ctx context.Context, p products.Product) (int64, error) {
	p.ID = 0
	var created struct {
		ProductID int64 `json:"productId"`
	}
	if err := r.do(ctx, "create", http.MethodPost, r.base+mainRoute, p, &created); err != nil {
		return 0, err
	}
	return created.ProductID, nil
}

func (r *RemoteRepo) Update(ctx context.Context, id int64, p products.Product) error {
	p.ID = id
	var updated struct {
		Message string `json:"message"`
	}
	return r.do(ctx, "update", http.MethodPut, r.itemRoute(id), p, &updated)
}

func (r *RemoteRepo) Delete(ctx context.Context, id int64) error {
	var deleted struct {
		Message string `json:"message"`
	}
	return r.do(ctx, "delete", http.MethodDelete, r.itemRoute(id), nil, &deleted)
}

// DeleteMany issues every delete concurrently and waits for all of them to
// settle. One failure does not stop or roll back the rest; the first error is
// reported after the fan-out completes.
func (r *RemoteRepo) DeleteMany(ctx context.Context, ids []int64) error {
	g := new(errgroup.Group)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			return r.Delete(ctx, id)
		})
	}
	return g.Wait()
}

func (r *RemoteRepo) itemRoute(id int64) string {
	return r.base + mainRoute + "/" + strconv.FormatInt(id, 10)
}

func (r *RemoteRepo) do(ctx context.Context, op, method, url string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return &StoreError{Op: op, Message: err.Error()}
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return &StoreError{Op: op, Message: err.Error()}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := r.http.Do(req)
	if err != nil {
		return &StoreError{Op: op, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var failure struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		if failure.Error == "" {
			failure.Error = http.StatusText(resp.StatusCode)
		}
		return &StoreError{Op: op, Status: resp.StatusCode, Message: failure.Error}
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &StoreError{Op: op, Status: resp.StatusCode, Message: err.Error()}
		}
	}
	return nil
}
