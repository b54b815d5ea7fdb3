package dto

import (
	extractModel "salesdesk/internal/domains/extract/model"
)

type InquiryRequest struct {
	Text string `json:"text" validate:"required"`
	// Draft asks for a model-written reply instead of the fixed template.
	Draft bool `json:"draft"`
}

type InquiryResponse struct {
	Extracted      extractModel.ExtractedRequest `json:"extracted"`
	Missing        []string                      `json:"missing,omitempty"`
	Available      bool                          `json:"available"`
	AvailableRooms []string                      `json:"availableRooms,omitempty"`
	Reply          string                        `json:"reply,omitempty"`
}
