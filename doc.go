// draughts is a multi-variant international draughts (checkers) rule
// engine: board representation, legal move generation, multi-capture
// resolution, notation conversion and termination detection for a family
// of closely related variants (international/standard, English/American,
// Italian, Russian, Brazilian, Turkish, Frisian, Frysk!, Antidraughts,
// Breakthrough).
//
// The package does not implement PDN file I/O, engine adapter protocols
// (Hub, DXP, CheckerBoard), tournament scheduling, opening books,
// endgame tablebases, search, or any UI; those are treated as external
// collaborators.
package draughts
