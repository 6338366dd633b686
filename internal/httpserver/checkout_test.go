package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCheckoutFlow(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, "cashier", "cashier123")

	for i := 0; i < 2; i++ {
		rec := ts.do(t, http.MethodPost, "/cart/items", token, gin.H{"productId": "p1"})
		if rec.Code != http.StatusOK {
			t.Fatalf("add item status = %d, body %s", rec.Code, rec.Body.String())
		}
	}

	rec := ts.do(t, http.MethodGet, "/cart", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get cart status = %d", rec.Code)
	}
	var cart struct {
		Pricing struct {
			Subtotal string `json:"subtotal"`
			Tax      string `json:"tax"`
			Total    string `json:"total"`
		} `json:"pricing"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &cart); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	if cart.Pricing.Subtotal != "3.00" || cart.Pricing.Tax != "0.24" || cart.Pricing.Total != "3.24" {
		t.Fatalf("unexpected pricing: %+v", cart.Pricing)
	}

	rec = ts.do(t, http.MethodPost, "/checkout", token, gin.H{"amountPaid": "5.00"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("checkout status = %d, body %s", rec.Code, rec.Body.String())
	}
	var sale struct {
		ID     string `json:"id"`
		Change string `json:"change"`
		Total  string `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &sale); err != nil {
		t.Fatalf("decode sale: %v", err)
	}
	if sale.Total != "3.24" || sale.Change != "1.76" {
		t.Fatalf("unexpected sale: %+v", sale)
	}

	if len(ts.archive.inserted) != 1 || ts.archive.inserted[0].ID != sale.ID {
		t.Fatalf("sale not mirrored into the archive")
	}
	if len(ts.engine.Cart("2")) != 0 {
		t.Fatalf("cart not cleared after checkout")
	}
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, "cashier", "cashier123")

	rec := ts.do(t, http.MethodPost, "/checkout", token, gin.H{"amountPaid": "100.00"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

// Parse failures and insufficient payment are both rejections, but with
// distinct reasons.
func TestCheckoutDistinguishesParseFailureFromInsufficient(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, "cashier", "cashier123")
	ts.do(t, http.MethodPost, "/cart/items", token, gin.H{"productId": "p1"})

	rec := ts.do(t, http.MethodPost, "/checkout", token, gin.H{"amountPaid": "five dollars"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("parse failure status = %d, want 422", rec.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error != "invalid payment amount" {
		t.Fatalf("parse failure reason = %q", resp.Error)
	}

	rec = ts.do(t, http.MethodPost, "/checkout", token, gin.H{"amountPaid": "0.01"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("insufficient status = %d, want 422", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error != "checkout rejected" {
		t.Fatalf("insufficient reason = %q", resp.Error)
	}
}

func TestCheckoutNegativeDiscountRejected(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, "cashier", "cashier123")
	ts.do(t, http.MethodPost, "/cart/items", token, gin.H{"productId": "p1"})

	rec := ts.do(t, http.MethodPost, "/checkout", token, gin.H{"amountPaid": "5.00", "discount": "-1.00"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

// A failing archive never fails the checkout; the sale is already final.
func TestCheckoutSurvivesArchiveFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.archive.err = errors.New("archive down")
	token := ts.login(t, "cashier", "cashier123")
	ts.do(t, http.MethodPost, "/cart/items", token, gin.H{"productId": "p1"})

	rec := ts.do(t, http.MethodPost, "/checkout", token, gin.H{"amountPaid": "5.00"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 despite archive failure", rec.Code)
	}
	if len(ts.engine.Sales()) != 1 {
		t.Fatalf("sale missing from ledger")
	}
}

func TestSalesListedNewestFirst(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, "cashier", "cashier123")

	ts.do(t, http.MethodPost, "/cart/items", token, gin.H{"productId": "p1"})
	ts.do(t, http.MethodPost, "/checkout", token, gin.H{"amountPaid": "2.00"})
	ts.do(t, http.MethodPost, "/cart/items", token, gin.H{"productId": "p2"})
	ts.do(t, http.MethodPost, "/checkout", token, gin.H{"amountPaid": "3.00"})

	rec := ts.do(t, http.MethodGet, "/sales", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Sales []struct {
			Items []struct {
				ProductID string `json:"productId"`
			} `json:"items"`
		} `json:"sales"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Sales) != 2 {
		t.Fatalf("sale count = %d, want 2", len(resp.Sales))
	}
	if resp.Sales[0].Items[0].ProductID != "p2" {
		t.Fatalf("sales not newest first")
	}
}

func TestReportSummary(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t, "cashier", "cashier123")

	ts.do(t, http.MethodPost, "/cart/items", token, gin.H{"productId": "p1"})
	ts.do(t, http.MethodPost, "/checkout", token, gin.H{"amountPaid": "2.00"})

	rec := ts.do(t, http.MethodGet, "/reports/summary", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var summary struct {
		SaleCount int    `json:"saleCount"`
		ItemsSold int    `json:"itemsSold"`
		Revenue   string `json:"totalRevenue"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &summary); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if summary.SaleCount != 1 || summary.ItemsSold != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	rec = ts.do(t, http.MethodGet, "/reports/summary?day=not-a-date", token, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad day status = %d, want 400", rec.Code)
	}
}
