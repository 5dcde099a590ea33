// Package symop implements crystallographic symmetry operators: an affine
// rotation+translation transform acting on fractional coordinates.
//
// What:
//
//   - Op couples a 3×3 rotation part R with a translation part T and maps a
//     fractional coordinate f to R·f + T.
//   - Parse reads the conventional "x,y,z" triplet notation used in
//     space-group tables (e.g. "-x,y+1/2,-z+1/3"); Op.String writes it back.
//   - Identity and IsIdentity cover the common no-op case so callers can
//     skip the fractional round trip entirely.
//
// Why:
//
//   - Restraints between symmetry-equivalent atoms need the second site
//     mapped through an operator before any distance is measured; this
//     package is that mapping.
//   - Triplet notation is the lingua franca of crystallographic data files;
//     supporting it keeps operator setup human-readable and diff-friendly.
//
// Errors:
//
//   - ErrParseOp: the triplet string is malformed (wrong component count,
//     unknown token, empty component). Wrapped errors carry the offending
//     component for diagnostics.
//
// Ops are plain value types; the zero Op is the all-zero transform, which is
// never a valid symmetry operator — use Identity() for the neutral element.
package symop
