package grammar

import (
	"fmt"
	"sort"
)

const startEndKey = StartState + EndState

// Simplify folds nonterminals deriving only ε or only a single terminal
// into their referents until a fixpoint, then renames the survivors.
func (g *ContextFreeGrammar) Simplify() error {
	err := g.relabelStart()
	if err != nil {
		return err
	}

	for {
		for _, name := range g.prodNames {
			g.prods[name] = dedupeProductions(name, g.prods[name])
		}

		// The start key is exempt: the start must survive even when it
		// derives nothing but ε.
		removed := map[string]struct{}{}
		replaced := map[string]string{}
		for _, name := range g.prodNames {
			if name == startEndKey {
				continue
			}
			prods := g.prods[name]
			if len(prods) != 1 {
				continue
			}
			switch {
			case prods[0].isEmpty():
				removed[name] = struct{}{}
			case prods[0].isSingleTerminal():
				replaced[name] = prods[0].Terms()[0]
			}
		}
		if len(removed) == 0 && len(replaced) == 0 {
			break
		}

		prodNames := make([]string, 0, len(g.prodNames))
		prods := make(map[string][]*Production, len(g.prods))
		for _, name := range g.prodNames {
			if _, ok := removed[name]; ok {
				continue
			}
			if _, ok := replaced[name]; ok {
				continue
			}
			list := make([]*Production, len(g.prods[name]))
			for i, prod := range g.prods[name] {
				list[i] = prod.transform(removed, replaced)
			}
			prodNames = append(prodNames, name)
			prods[name] = list
		}
		g.prodNames = prodNames
		g.prods = prods
	}

	g.renameNonterminals()
	return nil
}

func (g *ContextFreeGrammar) relabelStart() error {
	if g.start == startEndKey {
		return nil
	}
	_, hasStart := g.prods[g.start]
	_, hasKey := g.prods[startEndKey]
	if hasStart && hasKey {
		return newInternalInconsistencyError(fmt.Sprintf("start nonterminal %v cannot be relabeled: %v is already defined", g.start, startEndKey))
	}
	if hasStart {
		g.applyRenaming(map[string]string{g.start: startEndKey})
	}
	g.start = startEndKey
	return nil
}

// dedupeProductions drops self references and duplicates, then sorts by
// rendered form.
func dedupeProductions(name string, prods []*Production) []*Production {
	deduped := make([]*Production, 0, len(prods))
	seen := map[string]struct{}{}
	for _, prod := range prods {
		rendered := prod.String()
		if rendered == name {
			continue
		}
		if _, ok := seen[rendered]; ok {
			continue
		}
		seen[rendered] = struct{}{}
		deduped = append(deduped, prod)
	}
	sort.Slice(deduped, func(i, j int) bool {
		return deduped[i].String() < deduped[j].String()
	})
	return deduped
}

func (g *ContextFreeGrammar) renameNonterminals() {
	counter := NewStateCounter(0)
	counter.Invalidate(startName)
	mapping := make(map[string]string, len(g.prodNames))
	for _, name := range g.prodNames {
		if name == startEndKey {
			mapping[name] = startName
			continue
		}
		mapping[name] = counter.Next()
	}
	g.applyRenaming(mapping)
	g.start = startName
}

// The mapping must not merge two existing nonterminals.
func (g *ContextFreeGrammar) applyRenaming(mapping map[string]string) {
	prodNames := make([]string, len(g.prodNames))
	prods := make(map[string][]*Production, len(g.prods))
	for i, name := range g.prodNames {
		to, ok := mapping[name]
		if !ok {
			to = name
		}
		list := make([]*Production, len(g.prods[name]))
		for j, prod := range g.prods[name] {
			list[j] = prod.rename(mapping)
		}
		prodNames[i] = to
		prods[to] = list
	}
	g.prodNames = prodNames
	g.prods = prods
}
