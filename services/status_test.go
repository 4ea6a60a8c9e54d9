package services

import (
	"testing"

	"github.com/hitesh009911/grub-stack-00-sub001/models"
)

func TestOrderStatusInfo_AllStatusesDefined(t *testing.T) {
	statuses := []string{
		models.OrderStatusPending,
		models.OrderStatusPreparing,
		models.OrderStatusReady,
		models.OrderStatusPickedUp,
		models.OrderStatusInTransit,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	}

	for _, status := range statuses {
		info := OrderStatusInfo(status)
		if info.Label == "" || info.Icon == "" || info.Color == "" || info.Description == "" {
			t.Errorf("OrderStatusInfo(%s) has empty fields: %+v", status, info)
		}
		if info.Progress < 0 || info.Progress > 100 {
			t.Errorf("OrderStatusInfo(%s) progress out of range: %d", status, info.Progress)
		}
	}
}

func TestDeliveryStatusInfo_AllStatusesDefined(t *testing.T) {
	statuses := []string{
		models.DeliveryStatusPending,
		models.DeliveryStatusAssigned,
		models.DeliveryStatusPickedUp,
		models.DeliveryStatusInTransit,
		models.DeliveryStatusDelivered,
		models.DeliveryStatusCancelled,
	}

	for _, status := range statuses {
		info := DeliveryStatusInfo(status)
		if info.Label == "" || info.Icon == "" || info.Color == "" || info.Description == "" {
			t.Errorf("DeliveryStatusInfo(%s) has empty fields: %+v", status, info)
		}
	}
}

func TestStatusInfo_UnknownFallsBackToPending(t *testing.T) {
	tests := []struct {
		name   string
		status string
	}{
		{"unknown string", "EXPLODED"},
		{"empty string", ""},
		{"garbage", "???"},
	}

	pendingOrder := OrderStatusInfo(models.OrderStatusPending)
	pendingDelivery := DeliveryStatusInfo(models.DeliveryStatusPending)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OrderStatusInfo(tt.status); got != pendingOrder {
				t.Errorf("OrderStatusInfo(%q) = %+v, want PENDING entry", tt.status, got)
			}
			if got := DeliveryStatusInfo(tt.status); got != pendingDelivery {
				t.Errorf("DeliveryStatusInfo(%q) = %+v, want PENDING entry", tt.status, got)
			}
		})
	}
}

func TestStatusInfo_CaseInsensitive(t *testing.T) {
	if got := OrderStatusInfo("delivered"); got.Progress != 100 {
		t.Errorf("lowercase status not recognized: %+v", got)
	}
	if got := DeliveryStatusInfo("in_transit"); got.Progress != 80 {
		t.Errorf("lowercase status not recognized: %+v", got)
	}
}

func TestIsTerminalStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{models.OrderStatusDelivered, true},
		{models.OrderStatusCancelled, true},
		{models.OrderStatusPending, false},
		{models.OrderStatusInTransit, false},
		{"cancelled", true},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsTerminalStatus(tt.status); got != tt.want {
			t.Errorf("IsTerminalStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}
