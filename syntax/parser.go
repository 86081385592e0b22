/*
Copyright © 2026 Benny Powers <web@bennypowers.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

package syntax

import "crateidx/modpath"

// Parse scans content as a single source file and returns its top-level
// item list. On any structural failure (unterminated attribute, unmatched
// brace, truncated declaration) it returns (nil, false): callers never see
// a partially populated item list. They substitute an empty item list and
// warn, never retry.
//
// This is not a full-language parser: expression and statement bodies
// (function bodies, impl/trait blocks, static initializers, macro
// invocations) are recognized only well enough to skip them as balanced
// brace/paren/bracket spans. Only the item-level surface the indexer needs
// is extracted: struct, enum, const, type alias, module, extern-crate, and
// use declarations, plus `path`/`cfg_attr(.., path=..)` attributes.
func Parse(content []byte) ([]Item, bool) {
	p := &parser{toks: tokenize(content)}
	items, ok := p.parseItemList(false)
	if !ok || p.failed {
		return nil, false
	}
	return items, true
}

type parser struct {
	toks   []token
	pos    int
	failed bool
}

func (p *parser) cur() token {
	if p.pos >= len(p.toks) {
		return token{kind: tokEOF}
	}
	return p.toks[p.pos]
}

func (p *parser) advance() token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *parser) atPunct(s string) bool {
	t := p.cur()
	return t.kind == tokPunct && t.text == s
}

func (p *parser) atIdent(s string) bool {
	t := p.cur()
	return t.kind == tokIdent && t.text == s
}

// parseItemList parses a run of items, either the top level of a file
// (insideBraces == false, terminates at EOF) or the body of an inline
// module (insideBraces == true, terminates at a matching '}').
func (p *parser) parseItemList(insideBraces bool) ([]Item, bool) {
	var items []Item
	for {
		t := p.cur()
		if t.kind == tokEOF {
			if insideBraces {
				return nil, false
			}
			return items, true
		}
		if insideBraces && p.atPunct("}") {
			p.advance()
			return items, true
		}

		pathAttr := p.consumeAttributes()
		if p.failed {
			return nil, false
		}

		vis := p.parseVisibility()

		kw := p.cur()
		if kw.kind != tokIdent {
			// Stray punctuation at item position (e.g. a lone ';'):
			// tolerated, matching the source grammar's own allowance for
			// empty top-level items.
			p.advance()
			continue
		}

		switch kw.text {
		case "struct":
			p.advance()
			item, ok := p.parseStructOrEnum(ItemStruct, vis)
			if !ok {
				return nil, false
			}
			items = append(items, item)
		case "enum":
			p.advance()
			item, ok := p.parseStructOrEnum(ItemEnum, vis)
			if !ok {
				return nil, false
			}
			items = append(items, item)
		case "const":
			p.advance()
			item, ok := p.parseConst(vis)
			if !ok {
				return nil, false
			}
			items = append(items, item)
		case "type":
			p.advance()
			item, ok := p.parseTypeAlias(vis)
			if !ok {
				return nil, false
			}
			items = append(items, item)
		case "mod":
			p.advance()
			item, ok := p.parseMod(vis, pathAttr)
			if !ok {
				return nil, false
			}
			items = append(items, item)
		case "extern":
			p.advance()
			if p.atIdent("crate") {
				p.advance()
				item, ok := p.parseExternCrate(vis)
				if !ok {
					return nil, false
				}
				items = append(items, item)
			} else {
				// extern "C" { .. } block: no items of interest inside.
				if !p.skipItemTail() {
					return nil, false
				}
			}
		case "use":
			p.advance()
			item, ok := p.parseUse(vis)
			if !ok {
				return nil, false
			}
			items = append(items, item)
		default:
			// fn, impl, trait, static, unsafe/async modifiers, macro
			// invocations (`name! { .. }` / `name!(..);`): none are
			// extracted items, skip to the end of whatever this is.
			p.advance()
			if !p.skipItemTail() {
				return nil, false
			}
		}
	}
}

// skipItemTail consumes tokens from the current position to the end of
// the item currently being skipped or whose tail follows a parsed head
// (name, generics, type annotation): either a top-level ';' or the
// closing '}' of a brace body that began at depth 0.
func (p *parser) skipItemTail() bool {
	depth := 0
	sawBrace := false
	for {
		t := p.cur()
		if t.kind == tokEOF {
			return false
		}
		if t.kind != tokPunct {
			p.advance()
			continue
		}
		switch t.text {
		case "{":
			if depth == 0 {
				sawBrace = true
			}
			depth++
			p.advance()
		case "(", "[":
			depth++
			p.advance()
		case "}":
			depth--
			p.advance()
			if depth < 0 {
				return false
			}
			if depth == 0 && sawBrace {
				return true
			}
		case ")", "]":
			depth--
			p.advance()
			if depth < 0 {
				return false
			}
		case ";":
			if depth == 0 {
				p.advance()
				return true
			}
			p.advance()
		default:
			p.advance()
		}
	}
}

// parseGenericParams reads a leading '<' .. '>' generic parameter list and
// returns the plain type-parameter names, skipping lifetimes ('a) and
// taking only the name out of const generics and bounded/defaulted params.
// Returns nil if there is no generic parameter list at all.
func (p *parser) parseGenericParams() []string {
	if !p.atPunct("<") {
		return nil
	}
	p.advance()
	depth := 1
	expectStart := true
	var params []string
	for depth > 0 {
		t := p.cur()
		if t.kind == tokEOF {
			p.failed = true
			return params
		}
		if t.kind == tokPunct {
			switch t.text {
			case "<":
				depth++
				p.advance()
				expectStart = false
				continue
			case ">":
				depth--
				p.advance()
				expectStart = false
				continue
			case ",":
				if depth == 1 {
					p.advance()
					expectStart = true
					continue
				}
			case "'":
				if expectStart && depth == 1 {
					p.advance() // consume the lifetime tick
					if p.cur().kind == tokIdent {
						p.advance()
					}
					expectStart = false
					continue
				}
			}
		}
		if expectStart && depth == 1 && t.kind == tokIdent {
			if t.text == "const" {
				p.advance()
				if p.cur().kind == tokIdent {
					params = append(params, p.cur().text)
					p.advance()
				}
			} else {
				params = append(params, t.text)
				p.advance()
			}
			expectStart = false
			continue
		}
		p.advance()
	}
	return params
}

func (p *parser) parseStructOrEnum(kind ItemKind, vis modpath.Visibility) (Item, bool) {
	name := p.cur()
	if name.kind != tokIdent {
		return Item{}, false
	}
	p.advance()
	params := p.parseGenericParams()
	if p.failed || !p.skipItemTail() {
		return Item{}, false
	}
	return Item{Kind: kind, Name: name.text, Vis: vis, TypeParams: params}, true
}

func (p *parser) parseConst(vis modpath.Visibility) (Item, bool) {
	name := p.cur()
	if name.kind != tokIdent {
		return Item{}, false
	}
	p.advance()
	if !p.skipItemTail() {
		return Item{}, false
	}
	return Item{Kind: ItemConst, Name: name.text, Vis: vis}, true
}

func (p *parser) parseTypeAlias(vis modpath.Visibility) (Item, bool) {
	name := p.cur()
	if name.kind != tokIdent {
		return Item{}, false
	}
	p.advance()
	params := p.parseGenericParams()
	if p.failed || !p.skipItemTail() {
		return Item{}, false
	}
	return Item{Kind: ItemTypeAlias, Name: name.text, Vis: vis, TypeParams: params}, true
}

func (p *parser) parseMod(vis modpath.Visibility, pathAttr string) (Item, bool) {
	name := p.cur()
	if name.kind != tokIdent {
		return Item{}, false
	}
	p.advance()
	if p.atPunct(";") {
		p.advance()
		return Item{Kind: ItemModule, Name: name.text, Vis: vis, PathAttr: pathAttr}, true
	}
	if p.atPunct("{") {
		p.advance()
		body, ok := p.parseItemList(true)
		if !ok {
			return Item{}, false
		}
		return Item{Kind: ItemModule, Name: name.text, Vis: vis, HasBody: true, Body: body, PathAttr: pathAttr}, true
	}
	return Item{}, false
}

func (p *parser) parseExternCrate(vis modpath.Visibility) (Item, bool) {
	name := p.cur()
	if name.kind != tokIdent {
		return Item{}, false
	}
	p.advance()
	rename := ""
	if p.atIdent("as") {
		p.advance()
		alias := p.cur()
		if alias.kind != tokIdent {
			return Item{}, false
		}
		rename = alias.text
		p.advance()
	}
	if !p.atPunct(";") {
		return Item{}, false
	}
	p.advance()
	return Item{Kind: ItemExternCrate, Name: name.text, Vis: vis, Rename: rename}, true
}

func (p *parser) parseUse(vis modpath.Visibility) (Item, bool) {
	absolute := false
	if p.cur().kind == tokColonColon {
		absolute = true
		p.advance()
	}
	tree, ok := p.parseUseTree()
	if !ok {
		return Item{}, false
	}
	tree.Absolute = absolute
	if !p.atPunct(";") {
		return Item{}, false
	}
	p.advance()
	return Item{Kind: ItemUse, Vis: vis, UseTree: tree}, true
}

// parseUseTree parses one use-tree chain: a run of path segments
// (identifiers or the self/Self/super/crate keywords) terminated by a
// plain name, a rename, a glob, or a group.
func (p *parser) parseUseTree() (UseTree, bool) {
	if p.atPunct("*") {
		p.advance()
		return UseTree{Leaf: UseLeaf{Kind: LeafGlob}}, true
	}
	if p.atPunct("{") {
		group, ok := p.parseUseGroup()
		if !ok {
			return UseTree{}, false
		}
		return UseTree{Leaf: UseLeaf{Kind: LeafGroup, Group: group}}, true
	}

	word, ok := p.readPathWord()
	if !ok {
		return UseTree{}, false
	}
	var prefix []string
	for {
		if p.cur().kind == tokColonColon {
			p.advance()
			if p.atPunct("*") {
				p.advance()
				prefix = append(prefix, word)
				return UseTree{Prefix: prefix, Leaf: UseLeaf{Kind: LeafGlob}}, true
			}
			if p.atPunct("{") {
				prefix = append(prefix, word)
				group, ok := p.parseUseGroup()
				if !ok {
					return UseTree{}, false
				}
				return UseTree{Prefix: prefix, Leaf: UseLeaf{Kind: LeafGroup, Group: group}}, true
			}
			next, ok := p.readPathWord()
			if !ok {
				return UseTree{}, false
			}
			prefix = append(prefix, word)
			word = next
			continue
		}
		if p.atIdent("as") {
			p.advance()
			alias := p.cur()
			if alias.kind != tokIdent {
				return UseTree{}, false
			}
			p.advance()
			return UseTree{Prefix: prefix, Leaf: UseLeaf{Kind: LeafRename, Name: word, Alias: alias.text}}, true
		}
		return UseTree{Prefix: prefix, Leaf: UseLeaf{Kind: LeafName, Name: word}}, true
	}
}

func (p *parser) readPathWord() (string, bool) {
	t := p.cur()
	if t.kind != tokIdent {
		return "", false
	}
	p.advance()
	return t.text, true
}

func (p *parser) parseUseGroup() ([]UseTree, bool) {
	p.advance() // consume '{'
	var members []UseTree
	if p.atPunct("}") {
		p.advance()
		return members, true
	}
	for {
		tree, ok := p.parseUseTree()
		if !ok {
			return nil, false
		}
		members = append(members, tree)
		if p.atPunct(",") {
			p.advance()
			if p.atPunct("}") {
				p.advance()
				return members, true
			}
			continue
		}
		if p.atPunct("}") {
			p.advance()
			return members, true
		}
		return nil, false
	}
}

// consumeAttributes consumes zero or more leading `#[..]`/`#![..]`
// attribute groups, returning the literal string value of the last
// `path = "…"` or `cfg_attr(<cond>, path = "…")` attribute seen, or "" if
// none of the consumed attributes matched that shape.
func (p *parser) consumeAttributes() string {
	pathAttr := ""
	for p.atPunct("#") {
		p.advance()
		if p.atPunct("!") {
			p.advance()
		}
		if !p.atPunct("[") {
			continue
		}
		p.advance()
		body := p.collectAttributeBody()
		if p.failed {
			return pathAttr
		}
		if val, ok := extractPathAttr(body); ok {
			pathAttr = val
		}
	}
	return pathAttr
}

// collectAttributeBody returns the tokens between the already-consumed
// opening '[' and its matching ']', tracking nested '(' and '[' so a
// cfg_attr's parenthesized condition doesn't terminate the scan early.
func (p *parser) collectAttributeBody() []token {
	depth := 1
	var toks []token
	for {
		t := p.cur()
		if t.kind == tokEOF {
			p.failed = true
			return toks
		}
		if t.kind == tokPunct {
			switch t.text {
			case "[", "(":
				depth++
			case "]", ")":
				depth--
				if depth == 0 {
					p.advance()
					return toks
				}
			}
		}
		toks = append(toks, t)
		p.advance()
	}
}

// extractPathAttr scans an attribute's collected tokens for a
// `path = "…"` triple anywhere within them, which matches both a bare
// `#[path = "…"]` and a `#[cfg_attr(<cond>, path = "…")]` (the cond tokens
// precede the triple and are scanned over without ever being evaluated or
// retained).
func extractPathAttr(toks []token) (string, bool) {
	for i := 0; i+2 < len(toks); i++ {
		if toks[i].kind == tokIdent && toks[i].text == "path" &&
			toks[i+1].kind == tokPunct && toks[i+1].text == "=" &&
			toks[i+2].kind == tokString {
			return toks[i+2].text, true
		}
	}
	return "", false
}

func (p *parser) parseVisibility() modpath.Visibility {
	if !p.atIdent("pub") {
		return modpath.Inherited
	}
	p.advance()
	if !p.atPunct("(") {
		return modpath.PublicVisibility
	}
	p.advance()
	switch {
	case p.atIdent("crate"):
		p.advance()
		p.consumePunct(")")
		return modpath.CrateVisibility
	case p.atIdent("self"), p.atIdent("super"):
		name := p.cur().text
		p.advance()
		p.consumePunct(")")
		return modpath.Restricted(modpath.New(name))
	case p.atIdent("in"):
		p.advance()
		var segs []string
		for {
			t := p.cur()
			if t.kind != tokIdent {
				break
			}
			segs = append(segs, t.text)
			p.advance()
			if p.cur().kind == tokColonColon {
				p.advance()
				continue
			}
			break
		}
		p.consumePunct(")")
		return modpath.Restricted(modpath.New(segs...))
	default:
		// Unrecognized restricted-visibility form: skip to the closing
		// paren and fall back to inherited (private) rather than guessing.
		for !p.atPunct(")") && p.cur().kind != tokEOF {
			p.advance()
		}
		p.consumePunct(")")
		return modpath.Inherited
	}
}

func (p *parser) consumePunct(s string) bool {
	if p.atPunct(s) {
		p.advance()
		return true
	}
	return false
}
