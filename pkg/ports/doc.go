/*
Package ports defines the driven ports (interfaces) of the framework editor.

TreeStore decouples the editing session from where the tree is kept, so the
same session runs against a JSON/YAML file or an in-memory store in tests.
RunTreeStoreContract is a reusable suite every implementation must pass.
*/
package ports
