/*
Package ports defines the driven ports (interfaces) for the remesa engine.

These interfaces decouple the dialogue core from external implementations,
allowing the engine to work with various storage backends and lock providers.

# Key Interfaces

  - StateStore: Responsible for persisting and loading session State.
  - DistributedLocker: Provides distributed locking for handling concurrent session access.
  - TurnProcessor: The dialogue policy consumed by transport adapters.
*/
package ports
