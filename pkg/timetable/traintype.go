package timetable

import "strings"

// TrainTypeBranding carries display metadata for a train type tag. The
// transforms client fills DisplayName and BrandColour for known codes.
type TrainTypeBranding struct {
	Code        string `groups:"basic"`
	DisplayName string `groups:"basic"`
	BrandColour string `groups:"basic"`
}

func BrandingForTrainType(trainType string) *TrainTypeBranding {
	code := strings.ToLower(strings.TrimSpace(trainType))

	return &TrainTypeBranding{
		Code:        code,
		DisplayName: trainType,
	}
}
