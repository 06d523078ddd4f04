package response

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/Balamathias/glafrica/pkg/llm"
)

// scriptedProvider replays a fixed reply, whole for Chat and in chunks for
// ChatStream.
type scriptedProvider struct {
	chunks    []string
	chatErr   error
	openErr   error
	recvErr   error
	errAfter  int // inject recvErr after this many chunks
	lastClose *bool
}

func (p *scriptedProvider) Chat(context.Context, []llm.Message, ...llm.Option) (string, error) {
	if p.chatErr != nil {
		return "", p.chatErr
	}
	return strings.Join(p.chunks, ""), nil
}

func (p *scriptedProvider) ChatStream(context.Context, []llm.Message, ...llm.Option) (llm.ChunkStream, error) {
	if p.openErr != nil {
		return nil, p.openErr
	}
	return &scriptedStream{provider: p}, nil
}

func (p *scriptedProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

type scriptedStream struct {
	provider *scriptedProvider
	pos      int
}

func (s *scriptedStream) Recv() (string, error) {
	if s.provider.recvErr != nil && s.pos >= s.provider.errAfter {
		return "", s.provider.recvErr
	}
	if s.pos >= len(s.provider.chunks) {
		return "", io.EOF
	}
	chunk := s.provider.chunks[s.pos]
	s.pos++
	return chunk, nil
}

func (s *scriptedStream) Close() error {
	if s.provider.lastClose != nil {
		*s.provider.lastClose = true
	}
	return nil
}

func collect(t *testing.T, ch <-chan string) string {
	t.Helper()
	var sb strings.Builder
	timeout := time.After(2 * time.Second)
	for {
		select {
		case chunk, ok := <-ch:
			if !ok {
				return sb.String()
			}
			sb.WriteString(chunk)
		case <-timeout:
			t.Fatal("stream did not close in time")
		}
	}
}

func TestGenerate(t *testing.T) {
	provider := &scriptedProvider{chunks: []string{"We have ", "three boer goats."}}
	g := NewGenerator(provider, nil)

	reply := g.Generate(context.Background(), nil)
	if reply != "We have three boer goats." {
		t.Errorf("reply = %q", reply)
	}
}

func TestGenerateFallsBackOnError(t *testing.T) {
	provider := &scriptedProvider{chatErr: errors.New("timeout")}
	g := NewGenerator(provider, nil)

	reply := g.Generate(context.Background(), nil)
	if reply != FallbackMessage {
		t.Errorf("reply = %q, want the fallback message", reply)
	}
}

func TestGenerateStreamMatchesSync(t *testing.T) {
	provider := &scriptedProvider{chunks: []string{"Fresh ", "quail ", "eggs ", "available."}}
	g := NewGenerator(provider, nil)

	ch, err := g.GenerateStream(context.Background(), nil)
	if err != nil {
		t.Fatalf("GenerateStream: %v", err)
	}

	streamed := collect(t, ch)
	sync := g.Generate(context.Background(), nil)
	if streamed != sync {
		t.Errorf("streamed %q != sync %q", streamed, sync)
	}
}

func TestGenerateStreamClosesProviderStream(t *testing.T) {
	closed := false
	provider := &scriptedProvider{chunks: []string{"done"}, lastClose: &closed}
	g := NewGenerator(provider, nil)

	ch, err := g.GenerateStream(context.Background(), nil)
	if err != nil {
		t.Fatalf("GenerateStream: %v", err)
	}
	collect(t, ch)

	if !closed {
		t.Error("provider stream was not closed")
	}
}

func TestGenerateStreamOpenFailure(t *testing.T) {
	provider := &scriptedProvider{openErr: errors.New("connection refused")}
	g := NewGenerator(provider, nil)

	ch, err := g.GenerateStream(context.Background(), nil)
	if err != nil {
		t.Fatalf("GenerateStream: %v", err)
	}

	if got := collect(t, ch); got != FallbackMessage {
		t.Errorf("streamed %q, want the fallback message", got)
	}
}

func TestGenerateStreamMidStreamError(t *testing.T) {
	provider := &scriptedProvider{
		chunks:   []string{"Our goats are ", "healthy and "},
		recvErr:  errors.New("stream reset"),
		errAfter: 2,
	}
	g := NewGenerator(provider, nil)

	ch, err := g.GenerateStream(context.Background(), nil)
	if err != nil {
		t.Fatalf("GenerateStream: %v", err)
	}

	got := collect(t, ch)
	if !strings.HasSuffix(got, FallbackMessage) {
		t.Errorf("stream should end with the fallback message, got %q", got)
	}
}

func TestGenerateStreamCancellation(t *testing.T) {
	closed := false
	provider := &scriptedProvider{
		chunks:    []string{"a", "b", "c", "d"},
		lastClose: &closed,
	}
	g := NewGenerator(provider, nil)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := g.GenerateStream(ctx, nil)
	if err != nil {
		t.Fatalf("GenerateStream: %v", err)
	}

	// Read one chunk, then abandon the stream.
	<-ch
	cancel()

	timeout := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				if !closed {
					t.Error("provider stream was not closed after cancellation")
				}
				return
			}
		case <-timeout:
			t.Fatal("channel did not close after cancellation")
		}
	}
}
