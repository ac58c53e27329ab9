package converters

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/preflow/core"
)

// Sentinel errors for edge-list parsing.
var (
	// ErrSyntax marks a malformed line.
	ErrSyntax = errors.New("converters: syntax error")

	// ErrVertexCount marks a header count that disagrees with the edges.
	ErrVertexCount = errors.New("converters: vertex count mismatch")
)

// ParseError locates a failure in the input.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("converters: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Option configures ReadEdgeList.
type Option func(*options)

type options struct {
	sourceID string
	sinkID   string
	netOpts  []core.NetworkOption
}

// WithSourceID names the source vertex (default "s").
func WithSourceID(id string) Option {
	return func(o *options) {
		if id != "" {
			o.sourceID = id
		}
	}
}

// WithSinkID names the sink vertex (default "t").
func WithSinkID(id string) Option {
	return func(o *options) {
		if id != "" {
			o.sinkID = id
		}
	}
}

// WithNetworkOptions forwards options to core.NewNetwork.
func WithNetworkOptions(opts ...core.NetworkOption) Option {
	return func(o *options) { o.netOpts = append(o.netOpts, opts...) }
}

// ReadEdgeList parses an edge list from r into a new network.
func ReadEdgeList(r io.Reader, opts ...Option) (*core.Network, error) {
	o := options{sourceID: "s", sinkID: "t"}
	for _, opt := range opts {
		opt(&o)
	}

	net := core.NewNetwork(o.netOpts...)
	br := bufio.NewReader(r)
	declared := -1
	seenEdge := false

	for lineNo := 1; ; lineNo++ {
		line, err := readLine(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("converters: read: %w", err)
		}

		text := strings.TrimSpace(line)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		f := strings.Fields(text)

		switch {
		case len(f) == 1 && declared < 0 && !seenEdge:
			n, perr := strconv.Atoi(f[0])
			if perr != nil || n < 0 {
				return nil, &ParseError{Line: lineNo, Text: text, Err: fmt.Errorf("%w: bad vertex count", ErrSyntax)}
			}
			declared = n
		case len(f) == 3:
			c, perr := strconv.ParseFloat(f[2], 64)
			if perr != nil {
				return nil, &ParseError{Line: lineNo, Text: text, Err: fmt.Errorf("%w: bad capacity: %v", ErrSyntax, perr)}
			}
			if _, aerr := net.AddEdge(f[0], f[1], c); aerr != nil {
				return nil, &ParseError{Line: lineNo, Text: text, Err: aerr}
			}
			seenEdge = true
		default:
			return nil, &ParseError{Line: lineNo, Text: text, Err: fmt.Errorf("%w: want \"from to capacity\"", ErrSyntax)}
		}
	}

	if declared >= 0 && declared != net.VertexCount() {
		return nil, fmt.Errorf("%w: header says %d, edges use %d", ErrVertexCount, declared, net.VertexCount())
	}
	if net.HasVertex(o.sourceID) {
		if err := net.SetSource(o.sourceID); err != nil {
			return nil, err
		}
	}
	if net.HasVertex(o.sinkID) {
		if err := net.SetSink(o.sinkID); err != nil {
			return nil, err
		}
	}
	return net, nil
}

// LoadFile opens path and parses it with ReadEdgeList.
func LoadFile(path string, opts ...Option) (*core.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("converters: open %s: %w", path, err)
	}
	defer f.Close()

	net, err := ReadEdgeList(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return net, nil
}

// WriteEdgeList writes net as a header line followed by one edge per line
// in index order. Networks without isolated vertices read back with the
// same edges, capacities and terminals (under the default "s"/"t" names).
func WriteEdgeList(w io.Writer, net *core.Network) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", net.VertexCount()); err != nil {
		return err
	}
	for _, e := range net.Edges() {
		c := strconv.FormatFloat(e.Capacity, 'g', -1, 64)
		if _, err := fmt.Fprintf(bw, "%s %s %s\n", net.ID(e.From), net.ID(e.To), c); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// readLine returns the next line without its terminator. A final line
// without a newline is returned with a nil error.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
