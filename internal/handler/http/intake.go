package http

import (
	"net/http"

	"github.com/Theworld7/VisiFind/internal/app"
	"github.com/Theworld7/VisiFind/internal/utils"
	"github.com/Theworld7/VisiFind/models"
)

type dayTotalsResponse struct {
	Date   string                `json:"date"`
	Totals models.NutrientTotals `json:"totals"`
	Limits models.DailyLimits    `json:"limits"`
}

type rangeTotalsResponse struct {
	Start  string                `json:"start"`
	End    string                `json:"end"`
	Totals models.NutrientTotals `json:"totals"`
	Days   []models.DayTotals    `json:"days"`
	Limits models.DailyLimits    `json:"limits"`
}

// listRecords answers ?date[&meal] or ?start&end.
func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	date, start, end, ranged, err := dateQuery(r)
	if err != nil {
		h.writeError(w, r, "*Handler.listRecords", app.MsgInvalidQuery, err)
		return
	}

	svc := h.services.IntakeService

	h.intakeMu.Lock()
	defer h.intakeMu.Unlock()

	if ranged {
		if err = svc.LoadByDateRange(r.Context(), start, end); err != nil {
			h.writeError(w, r, "*Handler.listRecords", app.MsgErrorLoadingIntakeRecords, err)
			return
		}
		utils.WriteJSON(w, svc.Records(), http.StatusOK)
		return
	}

	if err = svc.LoadByDate(r.Context(), date); err != nil {
		h.writeError(w, r, "*Handler.listRecords", app.MsgErrorLoadingIntakeRecords, err)
		return
	}

	records := svc.Records()
	if meal := models.MealType(r.URL.Query().Get("meal")); meal != "" {
		records = svc.RecordsByMealType(date, meal)
	}
	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	var record models.IntakeRecord
	if err := decodeJSON(w, r, &record); err != nil {
		h.writeError(w, r, "*Handler.createRecord", app.MsgInvalidIntakeRecord, err)
		return
	}

	h.intakeMu.Lock()
	defer h.intakeMu.Unlock()

	id, err := h.services.IntakeService.Add(r.Context(), record)
	if err != nil {
		h.writeError(w, r, "*Handler.createRecord", app.MsgErrorCreatingIntakeRecord, err)
		return
	}

	utils.WriteJSON(w, createdResponse{ID: id}, http.StatusCreated)
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.writeError(w, r, "*Handler.deleteRecord", app.MsgInvalidIntakeRecordID, err)
		return
	}

	h.intakeMu.Lock()
	defer h.intakeMu.Unlock()

	if err = h.services.IntakeService.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, "*Handler.deleteRecord", app.MsgErrorDeletingIntakeRecord, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getTotals answers ?date with one day and ?start&end with one row per
// calendar day, zero rows included.
func (h *Handler) getTotals(w http.ResponseWriter, r *http.Request) {
	date, start, end, ranged, err := dateQuery(r)
	if err != nil {
		h.writeError(w, r, "*Handler.getTotals", app.MsgInvalidQuery, err)
		return
	}

	if ranged {
		if err = checkRangeSpan(start, end); err != nil {
			h.writeError(w, r, "*Handler.getTotals", app.MsgInvalidQuery, err)
			return
		}
	}

	svc := h.services.IntakeService

	h.intakeMu.Lock()
	defer h.intakeMu.Unlock()

	if !ranged {
		if err = svc.LoadByDate(r.Context(), date); err != nil {
			h.writeError(w, r, "*Handler.getTotals", app.MsgErrorLoadingIntakeRecords, err)
			return
		}
		utils.WriteJSON(w, dayTotalsResponse{
			Date:   date,
			Totals: svc.DailyTotals(date),
			Limits: svc.DailyLimits(),
		}, http.StatusOK)
		return
	}

	if err = svc.LoadByDateRange(r.Context(), start, end); err != nil {
		h.writeError(w, r, "*Handler.getTotals", app.MsgErrorLoadingIntakeRecords, err)
		return
	}
	days, err := svc.DailyTotalsForRange(start, end)
	if err != nil {
		h.writeError(w, r, "*Handler.getTotals", app.MsgErrorAggregatingIntakeRecords, err)
		return
	}

	utils.WriteJSON(w, rangeTotalsResponse{
		Start:  start,
		End:    end,
		Totals: svc.RangeTotals(start, end),
		Days:   days,
		Limits: svc.DailyLimits(),
	}, http.StatusOK)
}

func (h *Handler) getDailyLimits(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.IntakeService.DailyLimits(), http.StatusOK)
}

func (h *Handler) putDailyLimits(w http.ResponseWriter, r *http.Request) {
	var limits models.DailyLimits
	if err := decodeJSON(w, r, &limits); err != nil {
		h.writeError(w, r, "*Handler.putDailyLimits", app.MsgInvalidDailyLimits, err)
		return
	}

	if err := h.services.IntakeService.SaveDailyLimits(r.Context(), limits); err != nil {
		h.writeError(w, r, "*Handler.putDailyLimits", app.MsgErrorSavingDailyLimits, err)
		return
	}

	utils.WriteJSON(w, h.services.IntakeService.DailyLimits(), http.StatusOK)
}
