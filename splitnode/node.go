package splitnode

import (
	"context"
	"sync"

	"github.com/dgryski/go-farm"
	"github.com/esteinig/dorado/duplexread"
	"github.com/esteinig/dorado/readindex"
	"github.com/esteinig/dorado/splitfinder"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
)

// Node is the duplex-split pipeline stage: a bounded queue of Messages
// serviced by a fixed pool of worker goroutines, each running
// splitfinder.Split to completion on one parent Read before pulling its
// next message, then forwarding every result to sink.
type Node struct {
	settings duplexread.Settings
	sink     Sink

	queue chan Message
	wg    sync.WaitGroup
	ctx   context.Context

	// parents gives a worker a read-only handle to a parent Read while its
	// children are in flight, without threading the pointer itself through
	// any downstream message.
	parents *readindex.Index

	closeOnce sync.Once
}

// NewNode starts numWorkerThreads goroutines pulling from a queue of
// capacity maxReads and returns the running Node, matching the original
// constructor's shape: DuplexSplitNode(sink, settings, num_worker_threads,
// max_reads).
func NewNode(sink Sink, settings duplexread.Settings, numWorkerThreads, maxReads int) *Node {
	n := &Node{
		settings: settings,
		sink:     sink,
		queue:    make(chan Message, maxReads),
		ctx:      vcontext.Background(),
		parents:  readindex.New(),
	}
	for i := 0; i < numWorkerThreads; i++ {
		n.wg.Add(1)
		go n.worker(i)
	}
	return n
}

func (n *Node) worker(id int) {
	defer n.wg.Done()
	for msg := range n.queue {
		n.process(id, msg)
	}
}

func (n *Node) process(worker int, msg Message) {
	if msg.Kind != KindRead || !n.settings.Enabled {
		n.sink.PushMessage(msg)
		return
	}

	fp := farm.Hash64([]byte(msg.Read.ReadID))
	log.Debug.Printf("splitnode: worker %d processing read %s (fp=%x)", worker, msg.Read.ReadID, fp)

	n.parents.Store(msg.Read)
	children := splitfinder.Split(msg.Read, &n.settings)

	for _, child := range children {
		n.sink.PushMessage(ReadMessage(child))
	}
	n.parents.Delete(msg.Read.ReadID)
	log.Debug.Printf("splitnode: worker %d emitted %d subreads for read %s", worker, len(children), msg.Read.ReadID)
}

// PushMessage enqueues msg, blocking the caller (backpressure) while the
// queue is full, so a slow downstream sink throttles upstream producers
// rather than letting the queue grow without bound. Pushing after Close
// has been called panics, matching the "safe to call exactly once"
// contract on the shutdown side, not the send side.
func (n *Node) PushMessage(msg Message) {
	select {
	case n.queue <- msg:
	case <-n.ctx.Done():
	}
}

// Close terminates the queue, waits for every in-flight message to drain
// through the worker pool, and then propagates termination to the
// downstream sink exactly once. Safe to call multiple times; only the
// first call has any effect.
func (n *Node) Close() {
	n.closeOnce.Do(func() {
		close(n.queue)
		n.wg.Wait()
		n.sink.Close()
	})
}
