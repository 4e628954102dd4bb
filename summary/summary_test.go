package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pinont/Image-Processing-AI-x-Blockchain/detector"
)

func detections(classes ...string) []detector.Detection {
	dets := make([]detector.Detection, len(classes))
	for i, class := range classes {
		dets[i] = detector.Detection{Class: class, Confidence: 0.9}
	}
	return dets
}

func TestSummarizeCountsAndOrder(t *testing.T) {
	counts := Summarize(detections("car", "person", "car", "dog", "person", "car"))

	require.Len(t, counts, 3)
	// First-seen order, not alphabetical and not by count.
	assert.Equal(t, ClassCount{Class: "car", Count: 3}, counts[0])
	assert.Equal(t, ClassCount{Class: "person", Count: 2}, counts[1])
	assert.Equal(t, ClassCount{Class: "dog", Count: 1}, counts[2])
}

func TestSummarizeTotalMatchesInput(t *testing.T) {
	input := detections("cat", "cat", "bird", "cat", "bench")
	counts := Summarize(input)

	assert.Equal(t, len(input), counts.Total())

	seen := make(map[string]bool)
	for _, cc := range counts {
		seen[cc.Class] = true
	}
	assert.Equal(t, map[string]bool{"cat": true, "bird": true, "bench": true}, seen)
}

func TestSummarizeEmpty(t *testing.T) {
	counts := Summarize(nil)
	assert.Empty(t, counts)
	assert.Equal(t, 0, counts.Total())
}

func TestDetectMessage(t *testing.T) {
	counts := Summarize(detections("person", "person", "car"))
	assert.Equal(t, "YOLO detected: person (2), car (1)", DetectMessage(counts))
}

func TestDetectMessageNoObjects(t *testing.T) {
	assert.Equal(t, NoObjectsMessage, DetectMessage(nil))
}

func TestChatMessage(t *testing.T) {
	counts := Summarize(detections("person", "car", "car"))
	assert.Equal(t, "I analyzed the image and detected: 1 person, 2 car.", ChatMessage(counts))
}

func TestChatMessageSingularPerson(t *testing.T) {
	msg := ChatMessage(Summarize(detections("person")))
	assert.Contains(t, msg, "1 person")
	assert.NotContains(t, msg, "1 persons")
}

func TestChatMessageNoObjects(t *testing.T) {
	assert.Equal(t, NoObjectsChatMessage, ChatMessage(nil))
}

func TestAckMessageEchoesVerbatim(t *testing.T) {
	msg := AckMessage("what can you see?")
	assert.True(t, strings.Contains(msg, "'what can you see?'"))
}
