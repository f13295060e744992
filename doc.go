// Package arith evaluates arithmetic expressions over float64.
//
// Expressions are numbers combined with the binary operators + - * / and ^,
// grouped with parentheses. "2^3^2" is "2^(3^2)", and "5-3-2" is "(5-3)-2".
// There is no unary minus and no implicit multiplication, so "-1" and
// "4(5-2)" are both rejected.
//
// Evaluation is a pipeline: Tokenize splits the text into tokens, ToPostfix
// reorders them into postfix form, BuildTree turns postfix into a binary tree,
// and Node.Eval computes the value. EvalString runs all of it at once.
//
// Nothing is shared between evaluations, so separate calls are safe to make
// concurrently.
package arith
