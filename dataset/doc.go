// Package dataset produces and persists batches of k-dimensional entries
// for bulk-loading a kdtree.Tree.
//
// 🚀 What is inside?
//
//	• Generators: Uniform (random box), Grid (regular lattice), Clustered
//	  (Gaussian blobs around random centers).
//	• Functional options: seeding (WithSeed / WithRand) and labelling
//	  (WithLabelFn / WithFakeLabels).
//	• A YAML codec (Encode / Decode / ReadFile / WriteFile) for the
//	  {dims, points: [{key, value}]} document shape.
//
// ⚙️ Usage:
//
//	entries, err := dataset.Generate(3, dataset.Uniform(1000, 0, 100), dataset.WithSeed(42))
//	if err != nil {
//		// handle ErrBadDimension / ErrTooFewPoints / ErrBadBounds / ErrNeedRandSource
//	}
//	tree, err := kdtree.Build(3, entries)
//
// Determinism:
//
//	For a fixed seed and option list every generator returns the same batch,
//	in the same order, on every platform.
package dataset
