/*
Package remesa is a slot-filling dialogue engine for international money
transfers. It collects the transfer details turn by turn from free-form text,
validates every value before storing it, asks for explicit confirmation, and
executes the transfer exactly once.

The engine is deterministic and rule-based: extraction is pattern matching
against known field shapes and alias tables, never a language model, so the
same utterance in the same state always produces the same outcome.

# Architecture

The core follows a hexagonal layout. pkg/domain holds the pure state model,
pkg/engine the per-turn dialogue policy, and pkg/ports the interfaces that
decouple them from storage (pkg/adapters/memory, pkg/adapters/redis) and
transports (pkg/adapters/http, the CLI). The session manager serializes
turns per session, locally and, with a DistributedLocker, across replicas.

# Usage

The root package exposes a facade that wires the pieces together:

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/avelarq/remesa"
	)

	func main() {
		svc, err := remesa.New()
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		turn, err := svc.ProcessTurn(ctx, "session-123", "send $100 to Daniela Varela")
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(turn.Response)
	}

By default sessions live in memory. Use WithStore to plug a Redis store for
durable sessions, and WithLocker to coordinate replicas.
*/
package remesa
