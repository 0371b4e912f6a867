package peg

import "sync"

// metaGrammar returns the resolved entry matcher of peggy-rt's own
// meta-grammar: the fixed matcher graph that parses PEG grammar source text
// into a Node tree. It mirrors:
//
//	grammar     <- spacing definition+
//	definition  <- identifier left_arrow expression
//	expression  <- sequence (slash sequence)*
//	sequence    <- prefix*
//	prefix      <- (and / not)? suffix
//	suffix      <- primary (question / star / plus)?
//	primary     <- identifier !left_arrow
//	             / open expression close
//	             / literal / class / dot
//	identifier  <- [A-Za-z0-9_]+ spacing
//	literal     <- ('...' / "...") spacing        (non-greedy)
//	class       <- '[' ... ']' spacing            (non-greedy)
//	dot         <- '.' spacing
//	and         <- '&' spacing      not        <- '!' spacing
//	slash       <- '/' spacing      left_arrow <- '<-' spacing
//	question    <- '?' spacing      star       <- '*' spacing
//	plus        <- '+' spacing
//	open        <- '(' spacing      close      <- ')' spacing
//	spacing     <- (space / comment)*
//	comment     <- '#' (!end_of_line .)* end_of_line
//	space       <- ' ' / '\t' / end_of_line
//	end_of_line <- '\r\n' / '\n' / '\r'
//
// It is built the same way GrammarGenerator builds a user's grammar: named
// rules cross-call each other through Reference placeholders, resolved once
// by the same ReferenceResolver a user grammar goes through. That is what
// makes the engine self-describing: the parser that reads grammars is
// assembled from the combinators it hands out.
//
// Internal sub-expressions that the generator dispatches on by name
// (alternatives inside primary, the repetition inside expression, the
// optionals inside prefix/suffix) carry the synthetic names the generator
// expects: primary__sequence, primary__parens, expression__zeroormore,
// expression__sequence, prefix__optional, suffix__optional,
// grammar__oneormore, identifier__regex.
func metaGrammar() *Matcher {
	ref := NewReference

	endOfLine := NewOr(NewLiteral("\r\n"), NewLiteral("\n"), NewLiteral("\r")).Named("end_of_line")
	space := NewOr(NewLiteral(" "), NewLiteral("\t"), ref("end_of_line")).Named("space")
	commentBody := NewZeroOrMore(NewSequence(NewNot(ref("end_of_line")), dotMatcher()))
	comment := NewSequence(NewLiteral("#"), commentBody, ref("end_of_line")).Named("comment")
	spacing := NewZeroOrMore(NewOr(ref("space"), ref("comment"))).Named("spacing")

	idRegex := NewRegex("[A-Za-z0-9_]+").Named("identifier__regex")
	identifier := NewSequence(idRegex, ref("spacing")).Named("identifier")

	literal := NewSequence(NewOr(NewRegex(`'.*?'`), NewRegex(`".*?"`)), ref("spacing")).Named("literal")
	class := NewSequence(NewRegex(`\[.*?\]`), ref("spacing")).Named("class")
	dot := NewSequence(NewLiteral("."), ref("spacing")).Named("dot")

	and := NewSequence(NewLiteral("&"), ref("spacing")).Named("and")
	not := NewSequence(NewLiteral("!"), ref("spacing")).Named("not")
	slash := NewSequence(NewLiteral("/"), ref("spacing")).Named("slash")
	leftArrow := NewSequence(NewLiteral("<-"), ref("spacing")).Named("left_arrow")
	question := NewSequence(NewLiteral("?"), ref("spacing")).Named("question")
	star := NewSequence(NewLiteral("*"), ref("spacing")).Named("star")
	plus := NewSequence(NewLiteral("+"), ref("spacing")).Named("plus")
	open := NewSequence(NewLiteral("("), ref("spacing")).Named("open")
	closeParen := NewSequence(NewLiteral(")"), ref("spacing")).Named("close")

	primarySeq := NewSequence(ref("identifier"), NewNot(ref("left_arrow"))).Named("primary__sequence")
	primaryParens := NewSequence(ref("open"), ref("expression"), ref("close")).Named("primary__parens")
	primary := NewOr(primarySeq, primaryParens, ref("literal"), ref("class"), ref("dot")).Named("primary")

	suffixOpt := NewOptional(NewOr(ref("question"), ref("star"), ref("plus"))).Named("suffix__optional")
	suffix := NewSequence(ref("primary"), suffixOpt).Named("suffix")

	prefixOpt := NewOptional(NewOr(ref("and"), ref("not"))).Named("prefix__optional")
	prefix := NewSequence(prefixOpt, ref("suffix")).Named("prefix")

	sequence := NewZeroOrMore(ref("prefix")).Named("sequence")

	exprTail := NewSequence(ref("slash"), ref("sequence")).Named("expression__sequence")
	exprZeroOrMore := NewZeroOrMore(exprTail).Named("expression__zeroormore")
	expression := NewSequence(ref("sequence"), exprZeroOrMore).Named("expression")

	definition := NewSequence(ref("identifier"), ref("left_arrow"), ref("expression")).Named("definition")

	grammarOneOrMore := NewOneOrMore(ref("definition")).Named("grammar__oneormore")
	grammar := NewSequence(ref("spacing"), grammarOneOrMore).Named("grammar")

	rules := []*Matcher{
		grammar, definition, expression, sequence, prefix, suffix, primary,
		identifier, literal, class, dot, and, not, slash, leftArrow,
		question, star, plus, open, closeParen, spacing, comment, space,
		endOfLine,
	}
	resolved, err := NewReferenceResolver(rules).Resolve()
	if err != nil {
		// The meta-grammar is fixed and constructed here by hand; an
		// unknown-rule error would mean a bug in this file, not in
		// any grammar a caller supplies.
		panic("peg: internal meta-grammar failed to resolve: " + err.Error())
	}
	return resolved
}

var (
	metaGrammarOnce   sync.Once
	metaGrammarCached *Matcher
)

// MetaGrammar returns the shared, resolved meta-grammar matcher. It is
// immutable and safe to call Match/Parse on concurrently.
func MetaGrammar() *Matcher {
	metaGrammarOnce.Do(func() { metaGrammarCached = metaGrammar() })
	return metaGrammarCached
}
