package backend

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestProductListReshapesAndConvertsPrices(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/medicine" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		io.WriteString(w, `{"data":{"data":[
			{"id":"m1","name":"Paracetamol","price":12.5,"stock":40,"manufacturer":"Acme"},
			{"id":"m2","name":"Saline","price":2.0,"stock":0}
		],"total":2}}`)
	}))

	products, total, err := NewProductClient(client).List(context.Background(), ListProductsQuery{
		Search:     "para",
		CategoryID: "medical",
		Page:       2,
		Limit:      12,
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 || len(products) != 2 {
		t.Fatalf("unexpected result: total=%d len=%d", total, len(products))
	}
	if products[0].PriceCents != 1250 {
		t.Fatalf("expected 1250 cents, got %d", products[0].PriceCents)
	}
	if products[0].Manufacturer != "Acme" || products[1].Stock != 0 {
		t.Fatalf("unexpected products %+v", products)
	}
	for _, want := range []string{"search=para", "categoryId=medical", "page=2", "limit=12"} {
		if !containsParam(gotQuery, want) {
			t.Fatalf("query %q missing %q", gotQuery, want)
		}
	}
}

func containsParam(query, param string) bool {
	for _, part := range strings.Split(query, "&") {
		if part == param {
			return true
		}
	}
	return false
}

func TestProductGet(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/medicine/m1" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		io.WriteString(w, `{"data":{"id":"m1","name":"Paracetamol","price":45.99,"stock":7,"imageUrl":"http://img/p.png"}}`)
	}))

	product, err := NewProductClient(client).Get(context.Background(), "m1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if product.PriceCents != 4599 || product.Stock != 7 || product.ImageURL != "http://img/p.png" {
		t.Fatalf("unexpected product %+v", product)
	}
}
