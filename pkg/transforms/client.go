package transforms

var transforms []*TransformDefinition

func SetupClient() {
	// Train type branding
	transforms = append(transforms, &TransformDefinition{
		Type: "timetable.TrainTypeBranding",
		Match: map[string]string{
			"Code": "ice",
		},
		Data: map[string]interface{}{
			"DisplayName": "ICE",
			"BrandColour": "#D10A10",
		},
	})
	transforms = append(transforms, &TransformDefinition{
		Type: "timetable.TrainTypeBranding",
		Match: map[string]string{
			"Code": "tgv",
		},
		Data: map[string]interface{}{
			"DisplayName": "TGV",
			"BrandColour": "#9B2743",
		},
	})
	transforms = append(transforms, &TransformDefinition{
		Type: "timetable.TrainTypeBranding",
		Match: map[string]string{
			"Code": "railjet",
		},
		Data: map[string]interface{}{
			"DisplayName": "Railjet",
			"BrandColour": "#C8102E",
		},
	})
	transforms = append(transforms, &TransformDefinition{
		Type: "timetable.TrainTypeBranding",
		Match: map[string]string{
			"Code": "frecciarossa",
		},
		Data: map[string]interface{}{
			"DisplayName": "Frecciarossa",
			"BrandColour": "#A71930",
		},
	})
	transforms = append(transforms, &TransformDefinition{
		Type: "timetable.TrainTypeBranding",
		Match: map[string]string{
			"Code": "eurostar",
		},
		Data: map[string]interface{}{
			"DisplayName": "Eurostar",
			"BrandColour": "#0B2265",
		},
	})
	transforms = append(transforms, &TransformDefinition{
		Type: "timetable.TrainTypeBranding",
		Match: map[string]string{
			"Code": "nightjet",
		},
		Data: map[string]interface{}{
			"DisplayName": "Nightjet",
			"BrandColour": "#28306D",
		},
	})
	transforms = append(transforms, &TransformDefinition{
		Type: "timetable.TrainTypeBranding",
		Match: map[string]string{
			"Code": "regional",
		},
		Data: map[string]interface{}{
			"DisplayName": "Regional",
			"BrandColour": "#58595B",
		},
	})
}
