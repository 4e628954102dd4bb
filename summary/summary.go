// Package summary - Aggregation of detections into per-class counts and
// human-readable messages.
package summary

import (
	"fmt"
	"strings"

	"github.com/Pinont/Image-Processing-AI-x-Blockchain/detector"
)

// NoObjectsMessage is the /detect response message when nothing was
// recognized.
const NoObjectsMessage = "No recognizable objects found in this image."

// NoObjectsChatMessage is the conversational fallback when an image carried
// no recognizable objects.
const NoObjectsChatMessage = "I didn't detect any recognizable objects in this image. " +
	"Could you try with a different image or ask me something else?"

// ClassCount is one class name with its occurrence count.
type ClassCount struct {
	Class string
	Count int
}

// Counts holds per-class occurrence counts ordered by first appearance in
// the detection sequence.
type Counts []ClassCount

// Total returns the number of detections the counts were built from.
func (c Counts) Total() int {
	total := 0
	for _, cc := range c {
		total += cc.Count
	}
	return total
}

// Summarize groups detections by class name, counting occurrences in order
// of first appearance.
func Summarize(detections []detector.Detection) Counts {
	index := make(map[string]int, len(detections))
	counts := make(Counts, 0, len(detections))

	for _, det := range detections {
		if i, ok := index[det.Class]; ok {
			counts[i].Count++
			continue
		}
		index[det.Class] = len(counts)
		counts = append(counts, ClassCount{Class: det.Class, Count: 1})
	}
	return counts
}

// DetectMessage renders counts in the /detect style:
// "YOLO detected: person (2), car (1)".
func DetectMessage(counts Counts) string {
	if len(counts) == 0 {
		return NoObjectsMessage
	}

	parts := make([]string, len(counts))
	for i, cc := range counts {
		parts[i] = fmt.Sprintf("%s (%d)", cc.Class, cc.Count)
	}
	return "YOLO detected: " + strings.Join(parts, ", ")
}

// ChatMessage renders counts in the conversational style:
// "I analyzed the image and detected: 2 person, 1 car." A count of one reads
// "1 person"; the class noun is never pluralized.
func ChatMessage(counts Counts) string {
	if len(counts) == 0 {
		return NoObjectsChatMessage
	}

	parts := make([]string, len(counts))
	for i, cc := range counts {
		parts[i] = fmt.Sprintf("%d %s", cc.Count, cc.Class)
	}
	return fmt.Sprintf("I analyzed the image and detected: %s.", strings.Join(parts, ", "))
}

// AckMessage is the canned reply for a chat request without an image,
// echoing the input verbatim.
func AckMessage(message string) string {
	return fmt.Sprintf("I received your message: '%s'. I'm a YOLO object detection assistant. "+
		"Upload an image and I'll tell you what objects I can detect!", message)
}
