/*
Package domain contains the core domain models for the Remesa engine.

It defines the fundamental entities of the slot-filling state machine, such as
Fields, the per-session Details and State, the ephemeral extraction Candidate,
and the TransferResult. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture
principles.

# Key Entities

  - Field: One of the six structured data points required to complete a transfer.
  - Details: The validated values collected so far for a session.
  - State: The runtime snapshot of a session (Phase, Details, Result).
  - Candidate: An unvalidated (Field, raw value) proposal extracted from an utterance.
  - TransferResult: The synthetic outcome of an executed transfer.
*/
package domain
