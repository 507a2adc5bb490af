package classify

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// MLP is a single hidden layer perceptron: sigmoid hidden units followed by
// a softmax output layer. Weights are stored row-major ([in][out]).
type MLP struct {
	Inputs  int
	Hidden  int
	Outputs int

	weightH1  []float32
	weightOut []float32
	biasH1    []float32
	biasOut   []float32
}

var arrayPattern = regexp.MustCompile(`(\w+)\s*=\s*new\s+float\s*\[\s*\]\s*\{([^}]*)\}\s*;`)

// ParseMLP reads a weight file made of four float array assignments
// (WeightH1, WeightOut, BiasH1, BiasOut). Long arrays may be wrapped over
// several lines.
func ParseMLP(r io.Reader) (*MLP, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("classify: read weights: %w", err)
	}
	text := strings.Join(lines, " ")

	arrays := make(map[string][]float32)
	for _, m := range arrayPattern.FindAllStringSubmatch(text, -1) {
		vals, err := parseFloats(m[2])
		if err != nil {
			return nil, fmt.Errorf("classify: array %s: %w", m[1], err)
		}
		arrays[m[1]] = vals
	}

	m := &MLP{
		weightH1:  arrays["WeightH1"],
		weightOut: arrays["WeightOut"],
		biasH1:    arrays["BiasH1"],
		biasOut:   arrays["BiasOut"],
	}
	m.Hidden = len(m.biasH1)
	m.Outputs = len(m.biasOut)
	if m.Hidden == 0 || m.Outputs == 0 || len(m.weightH1) == 0 {
		return nil, errors.New("classify: weight file is missing arrays")
	}
	if len(m.weightH1)%m.Hidden != 0 {
		return nil, fmt.Errorf("classify: WeightH1 has %d values, not a multiple of %d hidden units", len(m.weightH1), m.Hidden)
	}
	if len(m.weightOut) != m.Hidden*m.Outputs {
		return nil, fmt.Errorf("classify: WeightOut has %d values, want %d", len(m.weightOut), m.Hidden*m.Outputs)
	}
	m.Inputs = len(m.weightH1) / m.Hidden
	return m, nil
}

// LoadMLP opens and parses a weight file.
func LoadMLP(path string) (*MLP, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := ParseMLP(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func parseFloats(s string) ([]float32, error) {
	parts := strings.Split(s, ",")
	out := make([]float32, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSuffix(strings.TrimSpace(p), "f")
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 32)
		if err != nil {
			return nil, err
		}
		out = append(out, float32(v))
	}
	return out, nil
}

// Classify runs the forward pass. A vector of the wrong length is a
// calibration error and panics.
func (m *MLP) Classify(features []float32) (int, float32) {
	if len(features) != m.Inputs {
		panic(fmt.Sprintf("classify: got %d features, model expects %d", len(features), m.Inputs))
	}
	hidden := make([]float64, m.Hidden)
	for j := range hidden {
		acc := float64(m.biasH1[j])
		for i, x := range features {
			acc += float64(x) * float64(m.weightH1[i*m.Hidden+j])
		}
		hidden[j] = 1 / (1 + math.Exp(-acc))
	}

	logits := make([]float64, m.Outputs)
	maxLogit := math.Inf(-1)
	for k := range logits {
		acc := float64(m.biasOut[k])
		for j, h := range hidden {
			acc += h * float64(m.weightOut[j*m.Outputs+k])
		}
		logits[k] = acc
		maxLogit = math.Max(maxLogit, acc)
	}

	var sum float64
	best := 0
	for k, l := range logits {
		logits[k] = math.Exp(l - maxLogit)
		sum += logits[k]
		if logits[k] > logits[best] {
			best = k
		}
	}
	return best, float32(logits[best] / sum)
}
