// Package inference - ONNX Runtime sessions for the YOLO detection model.
package inference

import (
	"image"
	"runtime"

	"github.com/pkg/errors"
	ort "github.com/yalue/onnxruntime_go"
)

const (
	// InputSize is the square side length of the model's input tensor.
	InputSize = 640
	// NumClasses is the width of the model's class score head.
	NumClasses = 80
	// NumAnchors is the number of candidate boxes the model emits per image.
	NumAnchors = 8400
)

// Session pairs an ONNX session with its pre-bound input and output tensors.
// The tensors are fixed at creation, so a Session must never run concurrent
// inferences; share sessions across requests through a Pool.
type Session struct {
	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	output  *ort.Tensor[float32]
}

// InitEnvironment points the onnxruntime bindings at the shared library and
// initializes the process-wide environment. Call once before creating
// sessions; pair with DestroyEnvironment on shutdown.
func InitEnvironment(libPath string) error {
	if libPath == "" {
		libPath = DefaultSharedLibPath()
	}
	ort.SetSharedLibraryPath(libPath)
	return errors.Wrap(ort.InitializeEnvironment(), "initialize onnxruntime environment")
}

// DestroyEnvironment tears down the process-wide onnxruntime environment.
func DestroyEnvironment() {
	ort.DestroyEnvironment()
}

// DefaultSharedLibPath returns the bundled onnxruntime library for the
// current platform.
func DefaultSharedLibPath() string {
	switch runtime.GOOS {
	case "windows":
		return "./third_party/onnxruntime.dll"
	case "darwin":
		return "./third_party/libonnxruntime.dylib"
	case "linux":
		if runtime.GOARCH == "arm64" {
			return "./third_party/onnxruntime_arm64.so"
		}
		return "./third_party/onnxruntime.so"
	}
	panic("no onnxruntime library for this platform")
}

// NewSession loads the model at modelPath with the fixed [1,3,640,640] input
// and [1,84,8400] YOLO output head.
func NewSession(modelPath string) (*Session, error) {
	inputShape := ort.NewShape(1, 3, InputSize, InputSize)
	inputTensor, err := ort.NewEmptyTensor[float32](inputShape)
	if err != nil {
		return nil, errors.Wrap(err, "create input tensor")
	}

	outputShape := ort.NewShape(1, 4+NumClasses, NumAnchors)
	outputTensor, err := ort.NewEmptyTensor[float32](outputShape)
	if err != nil {
		inputTensor.Destroy()
		return nil, errors.Wrap(err, "create output tensor")
	}

	options, err := ort.NewSessionOptions()
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, errors.Wrap(err, "create session options")
	}
	defer options.Destroy()

	options.SetIntraOpNumThreads(runtime.NumCPU())
	options.SetInterOpNumThreads(runtime.NumCPU())
	options.SetGraphOptimizationLevel(ort.GraphOptimizationLevelEnableExtended)

	session, err := ort.NewAdvancedSession(
		modelPath,
		[]string{"images"},
		[]string{"output0"},
		[]ort.ArbitraryTensor{inputTensor},
		[]ort.ArbitraryTensor{outputTensor},
		options,
	)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, errors.Wrap(err, "create session")
	}

	return &Session{
		session: session,
		input:   inputTensor,
		output:  outputTensor,
	}, nil
}

// Run stages img into the input tensor, executes one inference, and returns
// the raw output head. The returned slice aliases the output tensor and is
// only valid until the next Run on this session.
func (s *Session) Run(img image.Image) ([]float32, error) {
	if err := PrepareInput(img, s.input); err != nil {
		return nil, err
	}
	if err := s.session.Run(); err != nil {
		return nil, errors.Wrap(err, "run inference")
	}
	return s.output.GetData(), nil
}

// WarmUp executes one inference over a zeroed input so the first request does
// not pay the graph initialization cost.
func (s *Session) WarmUp() error {
	data := s.input.GetData()
	for i := range data {
		data[i] = 0
	}
	return errors.Wrap(s.session.Run(), "warm up session")
}

// Close releases the session and its tensors.
func (s *Session) Close() {
	if s.input != nil {
		s.input.Destroy()
		s.input = nil
	}
	if s.output != nil {
		s.output.Destroy()
		s.output = nil
	}
	if s.session != nil {
		s.session.Destroy()
		s.session = nil
	}
}
