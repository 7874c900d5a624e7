// Command billctl submits bill drafts to a billing service and looks up
// persisted bills by serial number, printing the fixed-width invoice
// layout to stdout.
//
//	billctl find BILL-001
//	billctl submit draft.json
//
// The draft file carries the same shape as the API request body:
// {"business": {...}, "products": [...], "discount": 10, "tax": 5,
// "pendingAmount": 500}.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/keinsta/si-bills-api/internal/application/session"
	"github.com/keinsta/si-bills-api/internal/config"
	"github.com/keinsta/si-bills-api/internal/domain/billing"
	"github.com/keinsta/si-bills-api/pkg/billclient"
	"github.com/keinsta/si-bills-api/pkg/invoice"
)

type draftFile struct {
	Business      billing.BusinessInfo `json:"business"`
	Products      []billing.LineItem   `json:"products"`
	Discount      float64              `json:"discount"`
	Tax           float64              `json:"tax"`
	PendingAmount float64              `json:"pendingAmount"`
}

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: billctl find <serialNumber> | billctl submit <draft.json>")
		os.Exit(2)
	}

	cfg := config.Load()
	client := billclient.New(cfg.Client.BaseURL,
		billclient.WithHTTPClient(&http.Client{Timeout: cfg.Client.Timeout}))
	sess := session.New()
	ctx := context.Background()

	switch os.Args[1] {
	case "find":
		bill, err := sess.Find(ctx, client, os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "billctl: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(invoice.RenderText(invoice.Compose(bill)))

	case "submit":
		data, err := os.ReadFile(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "billctl: %v\n", err)
			os.Exit(1)
		}
		var df draftFile
		if err := json.Unmarshal(data, &df); err != nil {
			fmt.Fprintf(os.Stderr, "billctl: parse draft: %v\n", err)
			os.Exit(1)
		}

		draft := sess.Draft()
		draft.Business = df.Business
		draft.DiscountPercent = df.Discount
		draft.TaxPercent = df.Tax
		draft.PendingAmount = df.PendingAmount
		for i, item := range df.Products {
			if err := draft.AddItem(item); err != nil {
				fmt.Fprintf(os.Stderr, "billctl: product %d: %v\n", i+1, err)
				os.Exit(1)
			}
		}

		bill, err := sess.Submit(ctx, client)
		if err != nil {
			fmt.Fprintf(os.Stderr, "billctl: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(invoice.RenderText(invoice.Compose(bill)))

	default:
		fmt.Fprintf(os.Stderr, "billctl: unknown command %q\n", os.Args[1])
		os.Exit(2)
	}
}
