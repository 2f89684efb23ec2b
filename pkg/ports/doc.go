/*
Package ports defines the driven ports (interfaces) for the pushdown engine.

These interfaces decouple the simulator from external implementations, allowing
definitions to come from any source and run history to live in any backend.

# Key Interfaces

  - DefinitionLoader: Produces a validated Definition (e.g., from a text, YAML or JSON file, or memory).
  - RunStore: Persists and retrieves RunRecords of completed simulations.
*/
package ports
