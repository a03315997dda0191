package handler

import "time"

func (h *AuthHandler) SetBcryptCost(cost int) {
	h.bcryptCost = cost
}

func (h *ClientHandler) SetNow(now func() time.Time) {
	h.now = now
}

func (h *MeasurementHandler) SetNow(now func() time.Time) {
	h.now = now
}

func (h *ReportHandler) SetNow(now func() time.Time) {
	h.now = now
}
