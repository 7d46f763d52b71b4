// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

// internal constants
const (
	queueSize = 1000
)

// Message - a command and its parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// Queue - bounded queue of messages
type Queue struct {
	c chan Message
}

// BusType - the set of queues
type BusType struct {
	Events *Queue // ledger changes for the publisher
}

// Bus - the global queues
var Bus = BusType{
	Events: NewQueue(queueSize),
}

// NewQueue - create a queue holding up to size messages
func NewQueue(size int) *Queue {
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue a message without blocking
//
// returns false if the queue was full and the message dropped
func (queue *Queue) Send(command string, parameters ...[]byte) bool {
	select {
	case queue.c <- Message{
		Command:    command,
		Parameters: parameters,
	}:
		return true
	default:
		return false
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Drain - discard any queued messages
func (queue *Queue) Drain() {
	for {
		select {
		case <-queue.c:
		default:
			return
		}
	}
}
