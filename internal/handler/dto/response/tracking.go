package response

import (
	"tablebook/internal/usecase/queries"
)

type TrackingResponse struct {
	Reservation    *ReservationResponse `json:"reservation"`
	Ordinal        int                  `json:"ordinal"`
	PipelineLength int                  `json:"pipeline_length"`
	IsActive       bool                 `json:"is_active"`
	IsTerminal     bool                 `json:"is_terminal"`
	CanExportProof bool                 `json:"can_export_proof"`
	PollSeconds    int                  `json:"poll_seconds"`
}

func ToTrackingResponse(view *queries.TrackingView) (*TrackingResponse, error) {
	res, err := ToReservationResponse(view.Reservation)
	if err != nil {
		return nil, err
	}
	return &TrackingResponse{
		Reservation:    res,
		Ordinal:        view.Ordinal,
		PipelineLength: view.PipelineLength,
		IsActive:       view.IsActive,
		IsTerminal:     view.IsTerminal,
		CanExportProof: view.CanExportProof,
		PollSeconds:    view.PollSeconds,
	}, nil
}
