// Command bilictl is a terminal management console for a bili-sync backend.
// It lists and filters archived videos, edits per-task download status
// vectors, resolves followed favorites/collections/uploaders against the
// configured video sources, and edits the backend configuration over its
// REST API.
package main
