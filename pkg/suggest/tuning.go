package suggest

// Tuning holds the thresholds used by the suggestion strategies.
type Tuning struct {
	FaceDetectConfidence float32 // Detections below this quality are ignored
	FaceDetectMinSizePct int     // Smallest face, in percent of the shorter image side
	FaceDetectShift      float64 // Sliding window stride
	FaceScaleFactor      float64 // Window growth between scales
	FaceIoUThreshold     float64 // Overlap above which detections are merged
	FacePadding          float64 // Extra margin around a face box, in face sizes
	DetectThumbSize      int     // Longest side the image is reduced to before analysis
}

// DefaultTuning returns the standard values.
func DefaultTuning() Tuning {
	return Tuning{
		FaceDetectConfidence: 10.0,
		FaceDetectMinSizePct: 1,
		FaceDetectShift:      0.1,
		FaceScaleFactor:      1.1,
		FaceIoUThreshold:     0.2,
		FacePadding:          0.1,
		DetectThumbSize:      1024,
	}
}
