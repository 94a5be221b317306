package entity

// Sample identifies one labeled image in the dataset.
type Sample struct {
	ClassName string `json:"class_name"`
	Name      string `json:"image_name"`
}

// Outlier is a sample whose detected class disagrees with its labeled
// class. Outliers are produced by an external classifier pass and only
// consumed here.
type Outlier struct {
	Sample        Sample   `json:"sample"`
	DetectedClass string   `json:"detected_class"`
	AllClasses    []string `json:"all_classes"`
}
