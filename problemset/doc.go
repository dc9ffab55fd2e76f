// Package problemset holds the verification table — the declarative problem
// configurations the harness runs, kept strictly as data.
//
// 🚀 What does it provide?
//
//	problemset.Default()        // the six catalogued cases + one aux case
//	problemset.Parse(data)      // YAML table → validated []problem.Config
//	problemset.Load(r)          // same, from an io.Reader
//	problemset.Marshal(cfgs)    // canonical YAML rendering, stable bytes
//
// ✨ Guarantees:
//
//   - Data-only: no formula logic lives here; every case names a formula
//     registered in package problem and is fully described by references,
//     parameters, target and tolerance.
//   - Validated before computed: Parse rejects empty ids, duplicate ids,
//     unknown formula names, negative tolerances and non-finite targets —
//     a malformed table never reaches the engine.
//   - Open: adding a case to the table (built-in or loaded) is the whole
//     extension surface; the engine never special-cases a problem id.
package problemset
