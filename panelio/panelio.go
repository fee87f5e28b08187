// Package panelio implements the command channel of an LCD panel.
//
// Parameter transfers are synchronous: they wait until every queued transfer
// has been written, then write the command and its parameters. Color transfers
// are queued and written by a single worker goroutine; at most QueueDepth of
// them are in flight, and the completion handler is called after each one.
//
// All transfers reach the wire in submission order.
package panelio

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
)

// NoCommand selects a pure data transfer, without a command byte.
const NoCommand = -1

// DefaultQueueDepth is the number of color transfers that may be in flight.
const DefaultQueueDepth = 10

// Errors.
var (
	ErrClosed  = errors.New("panelio: closed")
	ErrCommand = errors.New("panelio: invalid command")
)

var debug = os.Getenv("DISPLAY_DEBUG") != ""

// Writer is the framing layer the channel writes to.
type Writer interface {
	// Command sends a command byte with optional parameters.
	Command(byte, ...byte) error

	// Data sends data bytes without a command byte.
	Data(...byte) error
}

// DoneFunc is called on the worker goroutine once a color transfer has been
// written. ctx is the value passed to TxColor. It must not call back into the
// channel.
type DoneFunc func(ctx any, err error)

// Config of the command channel.
type Config struct {
	// QueueDepth is the maximum number of queued color transfers.
	QueueDepth int

	// OnColorDone is called after every color transfer, it may be nil.
	OnColorDone DoneFunc
}

type transfer struct {
	cmd  int
	data []byte
	ctx  any
}

// IO is a command channel.
type IO struct {
	w       Writer
	done    DoneFunc
	queue   chan transfer
	pending sync.WaitGroup
	worker  sync.WaitGroup

	// mu serializes submissions.
	mu     sync.Mutex
	closed bool

	errMu sync.Mutex
	err   error
}

// New starts a command channel writing to w.
func New(w Writer, config *Config) *IO {
	var c Config
	if config != nil {
		c = *config
	}
	if c.QueueDepth <= 0 {
		c.QueueDepth = DefaultQueueDepth
	}

	io := &IO{
		w:     w,
		done:  c.OnColorDone,
		queue: make(chan transfer, c.QueueDepth),
	}
	io.worker.Add(1)
	go io.run()
	return io
}

func (io *IO) run() {
	defer io.worker.Done()
	for t := range io.queue {
		err := io.write(t.cmd, t.data)
		if err != nil {
			io.setErr(err)
		}
		if io.done != nil {
			io.done(t.ctx, err)
		}
		io.pending.Done()
	}
}

func (io *IO) write(cmd int, data []byte) error {
	if cmd == NoCommand {
		return io.w.Data(data...)
	}
	return io.w.Command(byte(cmd), data...)
}

func (io *IO) setErr(err error) {
	io.errMu.Lock()
	if io.err == nil {
		io.err = err
	}
	io.errMu.Unlock()
}

// takeErr returns and clears the first error of a queued transfer.
func (io *IO) takeErr() error {
	io.errMu.Lock()
	defer io.errMu.Unlock()
	err := io.err
	io.err = nil
	if err != nil {
		return fmt.Errorf("panelio: queued transfer: %w", err)
	}
	return nil
}

func validCommand(cmd int) error {
	if cmd < NoCommand || cmd > 0xFF {
		return fmt.Errorf("%w %#x", ErrCommand, cmd)
	}
	return nil
}

// TxParam waits for queued transfers to drain, then writes the command and its
// parameters. With NoCommand only the parameters are written.
func (io *IO) TxParam(cmd int, params ...byte) error {
	if err := validCommand(cmd); err != nil {
		return err
	}

	io.mu.Lock()
	defer io.mu.Unlock()
	if io.closed {
		return ErrClosed
	}
	io.pending.Wait()
	if err := io.takeErr(); err != nil {
		return err
	}
	if debug {
		log.Printf("panelio: tx param %#02x (%d bytes)", cmd, len(params))
	}
	return io.write(cmd, params)
}

// TxColor queues a transfer of data, blocking while the queue is full. The
// channel keeps a reference to data until the completion handler has run.
func (io *IO) TxColor(cmd int, data []byte, ctx any) error {
	if err := validCommand(cmd); err != nil {
		return err
	}

	io.mu.Lock()
	defer io.mu.Unlock()
	if io.closed {
		return ErrClosed
	}
	if err := io.takeErr(); err != nil {
		return err
	}
	io.pending.Add(1)
	io.queue <- transfer{cmd: cmd, data: data, ctx: ctx}
	return nil
}

// Wait blocks until every queued transfer is written and reports the first
// error among them.
func (io *IO) Wait() error {
	io.mu.Lock()
	defer io.mu.Unlock()
	io.pending.Wait()
	return io.takeErr()
}

// Close drains the queue and stops the worker. It does not close the Writer.
func (io *IO) Close() error {
	io.mu.Lock()
	if io.closed {
		io.mu.Unlock()
		return ErrClosed
	}
	io.closed = true
	close(io.queue)
	io.mu.Unlock()

	io.worker.Wait()
	return io.takeErr()
}
