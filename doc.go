// Package polymorph is your in-memory playground for runtime dispatch —
// variant shape types behind a single behavioral contract, stored in
// containers that either preserve or deliberately discard type identity.
//
// 🚀 What is polymorph?
//
//	A small, focused library that brings together:
//		• Shape contract: Shape, Oval and Circle variants behind one Descriptor interface
//		• Dispatch invoker: call Describe through any handle, value or pointer alike
//		• Storage strategies: by-value (narrowing), exclusive-ownership, shared-ownership
//		• Variant registry: build variants by kind name with validated dimensions
//		• Demo driver: YAML scenarios exercising every strategy with an audit trail
//
// ✨ Why choose polymorph?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest semantics – slicing is an explicit narrowing step, never silent truncation
//   - Checked lifetimes – released handles report errors instead of dangling
//   - Extensible – register your own variants, hook into dispatch (OnDescribe…)
//
// Under the hood, everything is organized under these subpackages:
//
//	shape/    — Descriptor contract, Shape/Oval/Circle variants, fallible downcasts
//	dispatch/ — storage-agnostic invoker with context, sink and hook options
//	storage/  — ValueStore, OwnedStore, SharedStore with release auditing
//	registry/ — named variant constructors (kind → builder)
//	demo/     — scenario runner behind cmd/shapedemo
//
// Quick ASCII picture:
//
//	    Descriptor
//	    ╱    │    ╲
//	 Shape  Oval  Circle        (Circle refines Oval refines Shape)
//
//	stored by value    → identity lost (base output only)
//	stored by handle   → identity kept (most-derived output)
//
// Dive into README.md and examples/ for full walkthroughs of the slicing
// and ownership lifecycles.
//
//	go get github.com/katalvlaran/polymorph
package polymorph
