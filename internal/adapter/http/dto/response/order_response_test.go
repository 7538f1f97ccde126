package response

import (
	"testing"

	"taller_jaison/internal/domain/entities"
	"taller_jaison/internal/domain/receipt"
	"taller_jaison/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestMoney(t *testing.T) {
	cases := map[string]string{"0": "0.00", "50.175": "50.18", "45.5": "45.50", "-0.004": "0.00"}
	for in, want := range cases {
		if got := Money(decimal.RequireFromString(in)); got != want {
			t.Fatalf("Money(%s): expected %s, got %s", in, want, got)
		}
	}
}

func TestFromOrderDetails(t *testing.T) {
	order := entities.ServiceOrder{
		ID:     "ord_1",
		Status: entities.StatusListo,
		Items:  []entities.LineItem{{Description: "Frenos", Price: decimal.NewFromInt(100)}},
		Total:  decimal.RequireFromString("111.5"),
	}

	t.Run("dangling client", func(t *testing.T) {
		out := FromOrderDetails(usecase.OrderDetails{Order: order, Balance: decimal.RequireFromString("111.5")})
		if out.Client != nil || out.Vehicle != nil || out.ClientFound {
			t.Fatalf("expected no client or vehicle, got %+v", out)
		}
		if out.Order.StatusLabel != entities.StatusListo.Label() || out.Order.Total != "111.50" || out.Balance != "111.50" {
			t.Fatalf("unexpected order response: %+v", out.Order)
		}
		if out.Order.Payments == nil || len(out.Order.Items) != 1 || out.Order.Items[0].Price != "100.00" {
			t.Fatalf("unexpected collections: %+v", out.Order)
		}
	})

	t.Run("resolved client and vehicle", func(t *testing.T) {
		v := entities.Vehicle{ID: "veh_1", Plate: "ABC-123", Brand: "Toyota", Model: "Corolla", Year: "2019"}
		c := entities.Client{ID: "cli_1", Name: "Ana", Garage: []entities.Vehicle{v}}
		out := FromOrderDetails(usecase.OrderDetails{Order: order, Client: c, ClientFound: true, Vehicle: v, VehicleFound: true})
		if out.Client == nil || out.Client.Name != "Ana" || len(out.Client.Garage) != 1 {
			t.Fatalf("unexpected client: %+v", out.Client)
		}
		if out.Vehicle == nil || out.Vehicle.Descriptor != "Toyota Corolla (2019)" {
			t.Fatalf("unexpected vehicle: %+v", out.Vehicle)
		}
	})
}

func TestFromReceipt(t *testing.T) {
	doc := usecase.ReceiptDocument{
		View: receipt.View{OrderID: "ord_1", Total: decimal.RequireFromString("10"), Pending: decimal.RequireFromString("2.345")},
		Text: "recibo",
	}
	out := FromReceipt(doc)
	if out.Shop != receipt.ShopName || out.Total != "10.00" || out.Pending != "2.35" || out.Text != "recibo" {
		t.Fatalf("unexpected receipt: %+v", out)
	}
	if out.DamagedParts == nil || len(out.DamagedParts) != 0 {
		t.Fatalf("expected empty damaged parts, got %v", out.DamagedParts)
	}
}
