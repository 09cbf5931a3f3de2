// Package ir provides the intermediate representation (IR) for motion
// documents.
//
// # Overview
//
// A motion document is a YAML file whose top level is a sequence. Each
// element is either a recognized motion keyframe (Frame) or an entry of
// unknown shape (a blob) that the editor must carry through a load/save
// round trip without interpreting it.
//
// Frames are held as typed structs. Blobs are held as Node trees: a simple
// recursive tagged union distinguishing null, boolean, number, string,
// object, and array at runtime. The Node tree owns its children and carries
// no position or formatting information, making it purely structural.
//
// # Node Structure
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (Int64 or Float64)
//   - StringType: string value
//   - ArrayType: ordered list of nodes (Values)
//   - ObjectType: ordered key-value pairs (Fields and Values)
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i], so
// there are always as many fields as values. Field order is the order of
// the source document and is preserved through FromYAML/ToYAML.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("id"), Val: ir.FromInt(7)},
//	})
//
// # Document Structure
//
// A Document is the ordered list of entries captured by one load. Each
// Entry holds either a *Frame or a blob *Node, never both, so the original
// interleaving of frames and unknown entries survives re-serialization.
//
// # Thread Safety
//
// Nodes and Documents are not thread-safe. Synchronize externally or Clone
// per goroutine.
//
// # Related Packages
//
//   - github.com/WJJJ2004/motion-editor/parse - classifies and parses YAML into Documents
//   - github.com/WJJJ2004/motion-editor/encode - encodes Documents back to YAML
package ir
