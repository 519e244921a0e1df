// Package relay runs press trackers against events streamed from a browser
// over a websocket, and streams the resulting press lifecycle back.
package relay

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/phanxgames/press"
	"github.com/phanxgames/press/dom"
)

// Server is an http.Handler that upgrades requests to websockets. Every
// connection shares one document; frames from all connections are applied
// one at a time.
type Server struct {
	mu       sync.Mutex
	doc      *dom.Document
	log      *slog.Logger
	trackers map[string]*press.Tracker
	conns    map[*conn]struct{}
	upgrader websocket.Upgrader
	closed   bool
}

const (
	// writeWait bounds a single frame write.
	writeWait = 5 * time.Second
	// sendBuffer is the number of frames queued per connection before the
	// connection is dropped as too slow.
	sendBuffer = 64
)

// conn owns one websocket. Frames are queued and written by writeLoop, so
// dispatch never waits on the network.
type conn struct {
	ws        *websocket.Conn
	send      chan ServerFrame
	done      chan struct{}
	closeOnce sync.Once
}

func newConn(ws *websocket.Conn) *conn {
	return &conn{
		ws:   ws,
		send: make(chan ServerFrame, sendBuffer),
		done: make(chan struct{}),
	}
}

// enqueue queues f without blocking. It reports false if the connection is
// closed or its queue is full; a full queue closes the connection.
func (c *conn) enqueue(f ServerFrame) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- f:
		return true
	default:
		c.close()
		return false
	}
}

func (c *conn) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		c.ws.Close()
	})
}

func (c *conn) writeLoop(log *slog.Logger) {
	for {
		select {
		case f := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteJSON(f); err != nil {
				log.Warn("relay write failed", "err", err)
				c.close()
				return
			}
		case <-c.done:
			return
		}
	}
}

// NewServer returns a server dispatching into doc. A nil logger discards.
func NewServer(doc *dom.Document, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Server{
		doc:      doc,
		log:      log,
		trackers: make(map[string]*press.Tracker),
		conns:    make(map[*conn]struct{}),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Track attaches a tracker to the element with the given id. Its hook
// emissions are broadcast to every connection. Tracking an id twice updates
// its parameters.
func (s *Server) Track(id string, params press.Parameters) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.track(id, params)
}

func (s *Server) track(id string, params press.Parameters) error {
	if tr, ok := s.trackers[id]; ok {
		tr.SetParameters(params)
		return nil
	}
	el := s.doc.ElementByID(id)
	if el == nil {
		return fmt.Errorf("%w %q", ErrUnknownTarget, id)
	}
	emit := func(e press.PressEvent) {
		s.broadcast(ServerFrame{Kind: KindPress, Event: newEventFrame(e)})
	}
	tr := press.NewTracker(press.Hooks{
		OnPressStart: emit,
		OnPressEnd:   emit,
		OnPressUp:    emit,
		OnPress:      emit,
		OnPressChange: func(pressed bool) {
			s.broadcast(ServerFrame{Kind: KindChange, Target: id, Pressed: &pressed})
		},
	})
	tr.SetParameters(params)
	tr.Attach(el)
	s.trackers[id] = tr
	s.log.Info("tracking", "target", id, "adapter", tr.Adapter().String())
	return nil
}

// Untrack destroys the tracker for id, if any.
func (s *Server) Untrack(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tr, ok := s.trackers[id]; ok {
		tr.Destroy()
		delete(s.trackers, id)
	}
}

// Dispatch applies one client frame to the document.
func (s *Server) Dispatch(f ClientFrame) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch f.Type {
	case TypeLayout:
		return applyLayout(s.doc, f.Elements)
	case TypeTrack:
		var p press.Parameters
		if f.Params != nil {
			p = f.Params.parameters()
		}
		return s.track(f.Target, p)
	}

	ev, err := f.Event()
	if err != nil {
		return err
	}
	if f.Target == "" {
		if f.Type == press.Scroll {
			s.doc.Win().Scroll(0)
			return nil
		}
		s.doc.Dispatch(ev)
		return nil
	}
	el := s.doc.ElementByID(f.Target)
	if el == nil {
		return fmt.Errorf("%w %q", ErrUnknownTarget, f.Target)
	}
	if me, ok := ev.(*press.MouseEvent); ok && f.Type == press.Click {
		el.DispatchActivation(me)
		return nil
	}
	el.Dispatch(ev)
	return nil
}

// broadcast queues f on every connection and drops the ones that cannot keep
// up. Callers hold s.mu.
func (s *Server) broadcast(f ServerFrame) {
	for c := range s.conns {
		if !c.enqueue(f) {
			delete(s.conns, c)
			s.log.Warn("relay client dropped", "remote", c.ws.RemoteAddr().String())
		}
	}
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("relay upgrade failed", "err", err)
		return
	}
	c := newConn(ws)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		ws.Close()
		return
	}
	s.conns[c] = struct{}{}
	s.mu.Unlock()
	s.log.Info("relay connected", "remote", r.RemoteAddr)

	go c.writeLoop(s.log)
	defer func() {
		s.mu.Lock()
		delete(s.conns, c)
		s.mu.Unlock()
		c.close()
		s.log.Info("relay disconnected", "remote", r.RemoteAddr)
	}()
	s.readLoop(c)
}

func (s *Server) readLoop(c *conn) {
	for {
		var f ClientFrame
		if err := c.ws.ReadJSON(&f); err != nil {
			var closeErr *websocket.CloseError
			if !errors.As(err, &closeErr) {
				s.log.Debug("relay read ended", "err", err)
			}
			return
		}
		s.handle(c, f)
	}
}

func (s *Server) handle(c *conn, f ClientFrame) {
	if f.Type == TypePing {
		c.enqueue(ServerFrame{Kind: KindPong})
		return
	}
	if err := s.Dispatch(f); err != nil {
		s.log.Warn("relay frame rejected", "type", f.Type, "target", f.Target, "err", err)
		c.enqueue(ServerFrame{Kind: KindError, Target: f.Target, Message: err.Error()})
		return
	}
	if f.Type == TypeLayout || f.Type == TypeTrack {
		c.enqueue(ServerFrame{Kind: KindAck, Target: f.Target, Message: f.Type})
	}
}

// Close destroys every tracker and closes every connection.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, tr := range s.trackers {
		tr.Destroy()
		delete(s.trackers, id)
	}
	for c := range s.conns {
		c.close()
		delete(s.conns, c)
	}
}

// Document returns the server's document. Use it only from inside Dispatch
// callbacks or before serving.
func (s *Server) Document() *dom.Document { return s.doc }
