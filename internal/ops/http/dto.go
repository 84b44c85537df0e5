package http

import (
	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
	"github.com/prakarsateknik/opsdesk/pkg/opsdk"
)

// Converters between domain records and the wire DTOs shared with the SDK.

func toProfileDTO(p domain.Profile) opsdk.Profile {
	return opsdk.Profile{
		ID:          p.ID,
		Email:       p.Email,
		DisplayName: p.DisplayName,
		Role:        p.Role,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toUserInfoDTO(p domain.Profile) opsdk.UserInfoResponse {
	return opsdk.UserInfoResponse{
		UserID:      p.ID,
		Email:       p.Email,
		DisplayName: p.DisplayName,
		Role:        p.Role,
	}
}

func toCustomerDTO(c domain.Customer) opsdk.Customer {
	return opsdk.Customer{
		ID:           c.ID,
		CustomerName: c.CustomerName,
		Address:      c.Address,
		Phone:        c.Phone,
		Email:        c.Email,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func fromCustomerRequest(req opsdk.CustomerRequest) domain.Customer {
	return domain.Customer{
		CustomerName: req.CustomerName,
		Address:      req.Address,
		Phone:        req.Phone,
		Email:        req.Email,
	}
}

func toItemDTO(i domain.Item) opsdk.Item {
	return opsdk.Item{
		ID:           i.ID,
		PartAssyName: i.PartAssyName,
		PartName:     i.PartName,
		Process:      i.Process,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

func fromItemRequest(req opsdk.ItemRequest) domain.Item {
	return domain.Item{
		PartAssyName: req.PartAssyName,
		PartName:     req.PartName,
		Process:      req.Process,
	}
}

func toPurchaseOrderDTO(po domain.PurchaseOrder) opsdk.PurchaseOrder {
	return opsdk.PurchaseOrder{
		ID:                       po.ID,
		NoPO:                     po.NoPO,
		PODate:                   po.PODate,
		CustomerName:             po.CustomerName,
		PartAssyName:             po.PartAssyName,
		Quantity:                 po.Quantity,
		SalesName:                po.SalesName,
		CreatedByUserID:          po.CreatedByUserID,
		CreatedByUserDisplayName: po.CreatedByUserDisplayName,
		CreatedAt:                po.CreatedAt,
		UpdatedAt:                po.UpdatedAt,
	}
}

func fromPurchaseOrderRequest(req opsdk.PurchaseOrderRequest) domain.PurchaseOrder {
	return domain.PurchaseOrder{
		NoPO:         req.NoPO,
		PODate:       req.PODate,
		CustomerName: req.CustomerName,
		PartAssyName: req.PartAssyName,
		Quantity:     req.Quantity,
		SalesName:    req.SalesName,
	}
}

func toProductionDTO(rec domain.ProductionRecord) opsdk.ProductionRecord {
	return opsdk.ProductionRecord{
		ID:           rec.ID,
		Tanggal:      rec.Tanggal,
		NamaOperator: rec.NamaOperator,
		Shift:        rec.Shift,
		JenisProses:  rec.JenisProses,
		PartAssy:     rec.PartAssy,
		PartName:     rec.PartName,
		Process:      rec.Process,
		Mesin:        rec.Mesin,
		StartTime:    rec.StartTime,
		FinishTime:   rec.FinishTime,
		BreakMenit:   rec.BreakMenit,
		Duration:     rec.Duration,
		OK:           rec.OK,
		NG:           rec.NG,
		QCLine:       rec.QCLine,
		Note:         rec.Note,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}

func fromProductionRequest(req opsdk.ProductionRequest) domain.ProductionRecord {
	return domain.ProductionRecord{
		Tanggal:      req.Tanggal,
		NamaOperator: req.NamaOperator,
		Shift:        req.Shift,
		JenisProses:  req.JenisProses,
		PartAssy:     req.PartAssy,
		PartName:     req.PartName,
		Process:      req.Process,
		Mesin:        req.Mesin,
		StartTime:    req.StartTime,
		FinishTime:   req.FinishTime,
		BreakMenit:   req.BreakMenit,
		Duration:     req.Duration,
		OK:           req.OK,
		NG:           req.NG,
		QCLine:       req.QCLine,
		Note:         req.Note,
	}
}

func toNotificationDTO(n domain.Notification) opsdk.Notification {
	return opsdk.Notification{
		ID:            n.ID,
		UserID:        n.UserID,
		ActivityType:  n.ActivityType,
		Title:         n.Title,
		Message:       n.Message,
		IsRead:        n.IsRead,
		CreatedBy:     n.CreatedBy,
		CreatedByName: n.CreatedByName,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
}

func toMachineDTO(m domain.Machine) opsdk.Machine {
	return opsdk.Machine{ID: m.ID, MachineName: m.MachineName, CreatedAt: m.CreatedAt}
}

func toOperatorDTO(o domain.Operator) opsdk.Operator {
	return opsdk.Operator{ID: o.ID, OperatorName: o.OperatorName, CreatedAt: o.CreatedAt}
}
