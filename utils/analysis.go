package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomsarry/content_backend/models"
)

// ErrNotVideo is returned when an upload does not declare a video media type
var ErrNotVideo = errors.New("File must be a video")

// frame rates a clip can be reported at
var frameRates = []int{24, 30, 60}

// IsVideoContentType reports whether the declared media type is a video type
func IsVideoContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "video/")
}

// CheckVideo returns ErrNotVideo unless contentType is a video type
func CheckVideo(contentType string) error {
	if !IsVideoContentType(contentType) {
		return ErrNotVideo
	}
	return nil
}

// AnalyzeVideo builds a placeholder analysis for filename. Counts, duration
// and frame rate are drawn from s; every other field is fixed
func AnalyzeVideo(s Sampler, filename string, now time.Time) models.VideoAnalysisResult {
	return models.VideoAnalysisResult{
		Status:       "success",
		Filename:     filename,
		AnalysisType: "enhanced_demo",
		VisualAnalysis: models.VisualAnalysis{
			Duration: s.Uniform(10, 30),
			FPS:      Choose(s, frameRates),
			DetectedObjects: models.DetectedObjects{
				Person: s.IntBetween(10, 50),
				Face:   s.IntBetween(5, 25),
				Hand:   s.IntBetween(2, 15),
			},
			TopObjects: []string{"person", "face", "hand", "mobile phone"},
			SceneClassifications: []models.SceneClassification{
				{Label: "indoor", Score: 0.87},
				{Label: "portrait", Score: 0.72},
			},
		},
		AudioAnalysis: models.AudioAnalysis{
			Transcription: models.Transcription{
				Text:       "Hey everyone! Welcome back to my channel. Today I'm sharing something exciting!",
				Confidence: 0.89,
				WordCount:  12,
			},
			Sentiment: models.LabelScore{Label: "POSITIVE", Confidence: 0.92},
			Emotion:   models.LabelScore{Label: "joy", Confidence: 0.85},
		},
		Timestamp: ISOTimestamp(now),
	}
}

// FormatPercent renders v with one decimal and a trailing percent sign
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// PerformanceMetrics builds the metrics document, sampling resource usage from s
func PerformanceMetrics(s Sampler, now time.Time) models.PerformanceMetrics {
	return models.PerformanceMetrics{
		Status: "success",
		SystemMetrics: models.SystemMetrics{
			CPUUsage:    FormatPercent(s.Uniform(20, 80)),
			MemoryUsage: FormatPercent(s.Uniform(40, 90)),
			Uptime:      "99.9%",
		},
		MLMetrics: models.MLMetrics{
			VideoAnalysisTime:  "15-30 seconds",
			RecommendationTime: "< 100ms",
			ModelAccuracy: models.ModelAccuracy{
				ObjectDetection:   "85% mAP",
				SpeechRecognition: "90% accuracy",
			},
		},
		Timestamp: ISOTimestamp(now),
	}
}
