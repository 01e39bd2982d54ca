package agent

import (
	"context"
	"encoding/base64"
	"log"
	"sync"
	"time"

	"github.com/lorenzovitale/mindflex/internal/conversation"
	"github.com/lorenzovitale/mindflex/internal/instructions"
	"github.com/lorenzovitale/mindflex/internal/observability"
	"github.com/lorenzovitale/mindflex/internal/packet"
	"github.com/lorenzovitale/mindflex/internal/protocol"
	"github.com/lorenzovitale/mindflex/internal/session"
	"github.com/lorenzovitale/mindflex/internal/tone"
	"github.com/lorenzovitale/mindflex/internal/transcript"
)

const archiveFlushTimeout = 5 * time.Second

// Agent orchestrates one wellness conversation per connection: it owns
// the mode state machine, routes room events to the core components,
// and persists the conversation log at teardown.
type Agent struct {
	sessions *session.Manager
	store    *conversation.FileStore
	archive  conversation.Archive
	metrics  *observability.Metrics
}

func New(sessions *session.Manager, store *conversation.FileStore, archive conversation.Archive, metrics *observability.Metrics) *Agent {
	return &Agent{
		sessions: sessions,
		store:    store,
		archive:  archive,
		metrics:  metrics,
	}
}

// RunConnection drives a session lifecycle for one transport
// connection. All mutable session state lives in this goroutine;
// handlers for every event kind run here in arrival order, which
// serializes cross-kind interleavings without locking. The conversation
// log is flushed exactly once, on the first of: disconnect event,
// inbound channel close, or context cancellation.
func (a *Agent) RunConnection(ctx context.Context, s *session.Session, inbound <-chan any, outbound chan<- any) error {
	mode := instructions.ModeMental
	var dedup transcript.Filter
	var convLog conversation.Log
	var lastPayload map[string]any
	var flushOnce sync.Once

	flush := func() {
		flushOnce.Do(func() {
			key, ok := packet.RoomName(lastPayload)
			if !ok {
				key = "session_" + time.Now().UTC().Format("20060102_150405")
			}
			turns := convLog.Snapshot()

			path, err := a.store.Persist(key, turns)
			if err != nil {
				// Losing a transcript must not crash an already-ending session.
				log.Printf("session %s: conversation flush failed: %v", s.ID, err)
				a.metrics.SessionEvents.WithLabelValues("flush_failed").Inc()
			} else {
				log.Printf("session %s ended, %d turns saved to %s", s.ID, len(turns), path)
				a.metrics.SessionEvents.WithLabelValues("flush_ok").Inc()
			}

			// The request context may already be cancelled during teardown;
			// the archive gets its own short deadline.
			actx, cancel := context.WithTimeout(context.Background(), archiveFlushTimeout)
			defer cancel()
			if err := a.archive.SaveTurns(actx, key, turns); err != nil {
				log.Printf("session %s: conversation archive failed: %v", s.ID, err)
				a.metrics.SessionEvents.WithLabelValues("archive_failed").Inc()
			}

			_, _ = a.sessions.End(s.ID)
			a.metrics.ActiveSessions.Set(float64(a.sessions.ActiveCount()))
		})
	}
	defer flush()

	generateReply := func(instruction string, m instructions.Mode, hint tone.Hint) {
		a.send(outbound, protocol.ReplyInstruction{
			Type:        protocol.TypeReplyInstruction,
			SessionID:   s.ID,
			Instruction: instruction,
			Mode:        string(m),
			Tone:        string(hint),
		})
	}

	switchMode := func(target instructions.Mode, hint tone.Hint) {
		if target == mode {
			// Re-entry is a no-op: remind softly, keep state, and do not
			// re-emit the full mode instruction.
			a.metrics.ModeSwitches.WithLabelValues(string(target), "noop").Inc()
			generateReply(instructions.Acknowledge(target), target, tone.HintNeutral)
			return
		}
		mode = target
		a.metrics.ModeSwitches.WithLabelValues(string(target), "switched").Inc()
		generateReply(instructions.Compose(target, hint), target, hint)
	}

	// Default startup: mental mode instruction with the global behavior
	// applied, before any user event arrives.
	generateReply(instructions.Initial(), mode, tone.HintNeutral)

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-inbound:
			if !ok {
				return nil
			}
			switch m := msg.(type) {
			case protocol.UserTranscribed:
				_ = a.sessions.Touch(s.ID)
				text, accepted := dedup.Accept(m.Text, m.IsFinal)
				if !accepted {
					continue
				}
				log.Printf("USER(%s): %s (lang=%s, final=%v)", m.SpeakerID, text, m.Language, m.IsFinal)
				a.metrics.SessionEvents.WithLabelValues("transcript_accepted").Inc()

				if target, isCommand := instructions.ParseCommand(text); isCommand {
					hint := tone.Classify(text)
					a.metrics.ToneHints.WithLabelValues(string(hint)).Inc()
					switchMode(target, hint)
				}
				// Anything else is ordinary speech; the external language
				// model handles it through the transport's own pipeline.

			case protocol.ConversationItem:
				_ = a.sessions.Touch(s.ID)
				convLog.Append(conversation.Turn{
					ID:          m.ID,
					Role:        conversation.Role(m.Role),
					Text:        m.Text,
					Interrupted: m.Interrupted,
					CreatedAt:   m.CreatedAt,
				})
				for _, part := range m.Content {
					switch part.Kind {
					case "text":
						log.Printf(" - text: %s", part.Text)
					case "image":
						log.Printf(" - image: %s", part.Image)
					case "audio":
						log.Printf(" - audio frame, transcript available")
					}
				}
				if m.Role == "assistant" {
					log.Printf("ASSISTANT(%s): %s (interrupted=%v)", m.ID, m.Text, m.Interrupted)
				}
				a.metrics.SessionEvents.WithLabelValues("turn_recorded").Inc()

			case protocol.DataPacket:
				_ = a.sessions.Touch(s.ID)
				raw, err := base64.StdEncoding.DecodeString(m.PayloadBase64)
				if err != nil {
					log.Printf("session %s: undecodable data packet: %v", s.ID, err)
					a.metrics.SessionEvents.WithLabelValues("packet_dropped").Inc()
					continue
				}
				res := packet.Decode(raw)
				switch res.Kind {
				case packet.KindStructured:
					lastPayload = res.Object
					if msgField, ok := res.Object["message"].(string); ok {
						log.Printf("received data message: %s", msgField)
					} else {
						log.Printf("received data message: <no message field>")
					}
					if text, isChat := res.ChatText(); isChat {
						log.Printf("user typed: %s", text)
						hint := tone.Classify(text)
						a.metrics.ToneHints.WithLabelValues(string(hint)).Inc()
						generateReply(instructions.ToneDirective(hint), mode, hint)
					}
					// Other structured types are recorded but not acted upon.
				case packet.KindPlainText:
					if res.Text == "" {
						continue
					}
					log.Printf("received plain text: %s", res.Text)
					hint := tone.Classify(res.Text)
					a.metrics.ToneHints.WithLabelValues(string(hint)).Inc()
					generateReply(instructions.ToneDirective(hint), mode, hint)
				case packet.KindMalformed:
					log.Printf("session %s: dropping malformed data packet (%d bytes)", s.ID, len(raw))
					a.metrics.SessionEvents.WithLabelValues("packet_dropped").Inc()
				}

			case protocol.Disconnect:
				flush()
				return nil
			}
		}
	}
}

// send keeps the outbound path non-blocking: a stalled transport writer
// must not wedge the session event loop, so saturated queues drop.
func (a *Agent) send(outbound chan<- any, msg any) {
	select {
	case outbound <- msg:
	default:
		log.Printf("outbound queue full, dropping %T", msg)
		a.metrics.SessionEvents.WithLabelValues("outbound_dropped").Inc()
	}
}
