package models

// RootStatus is the greeting returned on the service root
type RootStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// HealthStatus lists the functional endpoints of the service
type HealthStatus struct {
	Status    string   `json:"status"`
	Endpoints []string `json:"endpoints"`
	Version   string   `json:"version"`
	Timestamp string   `json:"timestamp"`
}

// DetectedObjects holds the object counts per category
type DetectedObjects struct {
	Person int `json:"person"`
	Face   int `json:"face"`
	Hand   int `json:"hand"`
}

// SceneClassification is a scene label with its confidence score
type SceneClassification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// VisualAnalysis stores the visual part of a video analysis
type VisualAnalysis struct {
	Duration             float64               `json:"duration"`
	FPS                  int                   `json:"fps"`
	DetectedObjects      DetectedObjects       `json:"detected_objects"`
	TopObjects           []string              `json:"top_objects"`
	SceneClassifications []SceneClassification `json:"scene_classifications"`
}

// Transcription holds the speech to text output
type Transcription struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	WordCount  int     `json:"word_count"`
}

// LabelScore is a label with a confidence, used for sentiment and emotion
type LabelScore struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// AudioAnalysis stores the audio part of a video analysis
type AudioAnalysis struct {
	Transcription Transcription `json:"transcription"`
	Sentiment     LabelScore    `json:"sentiment"`
	Emotion       LabelScore    `json:"emotion"`
}

// VideoAnalysisResult is the response of the video analysis endpoint
type VideoAnalysisResult struct {
	Status         string         `json:"status"`
	Filename       string         `json:"filename"`
	AnalysisType   string         `json:"analysis_type"`
	VisualAnalysis VisualAnalysis `json:"visual_analysis"`
	AudioAnalysis  AudioAnalysis  `json:"audio_analysis"`
	Timestamp      string         `json:"timestamp"`
}

// Recommendation is one recommended video
type Recommendation struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Score    int    `json:"score"`
	Views    string `json:"views"`
}

// RecommendationSet is the response of the recommendations endpoint
type RecommendationSet struct {
	Status          string           `json:"status"`
	UserProfile     string           `json:"user_profile"`
	Recommendations []Recommendation `json:"recommendations"`
	Timestamp       string           `json:"timestamp"`
}

// SystemMetrics holds resource usage as percentage strings
type SystemMetrics struct {
	CPUUsage    string `json:"cpu_usage"`
	MemoryUsage string `json:"memory_usage"`
	Uptime      string `json:"uptime"`
}

// ModelAccuracy describes the accuracy of each model
type ModelAccuracy struct {
	ObjectDetection   string `json:"object_detection"`
	SpeechRecognition string `json:"speech_recognition"`
}

// MLMetrics describes the model serving characteristics
type MLMetrics struct {
	VideoAnalysisTime  string        `json:"video_analysis_time"`
	RecommendationTime string        `json:"recommendation_time"`
	ModelAccuracy      ModelAccuracy `json:"model_accuracy"`
}

// PerformanceMetrics is the response of the performance metrics endpoint
type PerformanceMetrics struct {
	Status        string        `json:"status"`
	SystemMetrics SystemMetrics `json:"system_metrics"`
	MLMetrics     MLMetrics     `json:"ml_metrics"`
	Timestamp     string        `json:"timestamp"`
}

// ErrorResponse carries a human readable error
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// FieldError describes one invalid or missing request field
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationErrorResponse is returned when request fields fail validation
type ValidationErrorResponse struct {
	Detail []FieldError `json:"detail"`
}
