package assessment

import (
	"slices"

	"github.com/mrsinham/painplanner/internal/labels"
)

// MaxStrategiesToRate caps how many strategies can be rated for helpfulness.
const MaxStrategiesToRate = 3

// Rateable returns the current strategies that may be picked for rating:
// every selected strategy except the free-text "Other".
func (c CopingManagement) Rateable() []string {
	return Without(c.CurrentStrategies, labels.OtherOption)
}

// Helpfulness returns the rating paired with strategy.
func (c CopingManagement) Helpfulness(strategy string) (Rating, bool) {
	for _, p := range c.MainStrategiesHelpfulness {
		if p.Strategy == strategy {
			return p.Helpfulness, true
		}
	}
	return Unrated, false
}

// ToggleCurrentStrategy adds or removes a current strategy. Removing one also
// drops it from the strategies to rate and its helpfulness pair.
func ToggleCurrentStrategy(strategy string) Mutation {
	return copingMutation(CurrentStrategies.key, func(c CopingManagement) CopingManagement {
		if slices.Contains(c.CurrentStrategies, strategy) {
			c.CurrentStrategies = Without(c.CurrentStrategies, strategy)
			c.MainStrategiesToRate = Without(c.MainStrategiesToRate, strategy)
			c.MainStrategiesHelpfulness = withoutPair(c.MainStrategiesHelpfulness, strategy)
			return c
		}
		c.CurrentStrategies = Toggle(c.CurrentStrategies, strategy)
		return c
	})
}

// SetCurrentStrategies replaces the current strategies and prunes the rated
// strategies and pairs that are no longer selected.
func SetCurrentStrategies(strategies []string) Mutation {
	return copingMutation(CurrentStrategies.key, func(c CopingManagement) CopingManagement {
		c.CurrentStrategies = slices.Clone(strategies)
		return normalizeCoping(c)
	})
}

// ToggleStrategyToRate adds or removes a strategy from the rated list along
// with its helpfulness pair. Adding is a no-op once three are chosen or when
// the strategy is not a rateable current strategy.
func ToggleStrategyToRate(strategy string) Mutation {
	return copingMutation(MainStrategiesToRate.key, func(c CopingManagement) CopingManagement {
		if slices.Contains(c.MainStrategiesToRate, strategy) {
			c.MainStrategiesToRate = Without(c.MainStrategiesToRate, strategy)
			c.MainStrategiesHelpfulness = withoutPair(c.MainStrategiesHelpfulness, strategy)
			return c
		}
		if len(c.MainStrategiesToRate) >= MaxStrategiesToRate || !slices.Contains(c.Rateable(), strategy) {
			return c
		}
		c.MainStrategiesToRate = Toggle(c.MainStrategiesToRate, strategy)
		c.MainStrategiesHelpfulness = append(slices.Clone(c.MainStrategiesHelpfulness),
			StrategyHelpfulness{Strategy: strategy})
		return c
	})
}

// SetStrategiesToRate replaces the rated strategies. Entries that are not
// rateable are dropped, the list is capped at three, and existing
// helpfulness ratings are kept for strategies that stay.
func SetStrategiesToRate(strategies []string) Mutation {
	return copingMutation(MainStrategiesToRate.key, func(c CopingManagement) CopingManagement {
		c.MainStrategiesToRate = slices.Clone(strategies)
		return normalizeCoping(c)
	})
}

// SetHelpfulness rates a strategy that is in the rated list. Unknown
// strategies are ignored.
func SetHelpfulness(strategy string, r Rating) Mutation {
	return copingMutation(MainStrategiesHelpfulness.key, func(c CopingManagement) CopingManagement {
		pairs := slices.Clone(c.MainStrategiesHelpfulness)
		for i := range pairs {
			if pairs[i].Strategy == strategy {
				pairs[i].Helpfulness = r
				c.MainStrategiesHelpfulness = pairs
				return c
			}
		}
		return c
	})
}

func copingMutation(field string, fn func(CopingManagement) CopingManagement) Mutation {
	m := Update(CopingSection, fn)
	m.field = field
	return m
}

func withoutPair(pairs []StrategyHelpfulness, strategy string) []StrategyHelpfulness {
	out := make([]StrategyHelpfulness, 0, len(pairs))
	for _, p := range pairs {
		if p.Strategy != strategy {
			out = append(out, p)
		}
	}
	return out
}

// normalizeCoping restores the rating invariants: the rated list is a
// de-duplicated subset of the rateable strategies, at most three long, and
// has exactly one helpfulness pair per entry in the same order.
func normalizeCoping(c CopingManagement) CopingManagement {
	if c.CurrentStrategies == nil {
		c.CurrentStrategies = []string{}
	}
	rateable := c.Rateable()
	toRate := make([]string, 0, MaxStrategiesToRate)
	for _, s := range c.MainStrategiesToRate {
		if len(toRate) == MaxStrategiesToRate {
			break
		}
		if slices.Contains(rateable, s) && !slices.Contains(toRate, s) {
			toRate = append(toRate, s)
		}
	}

	pairs := make([]StrategyHelpfulness, 0, len(toRate))
	for _, s := range toRate {
		h, _ := c.Helpfulness(s)
		pairs = append(pairs, StrategyHelpfulness{Strategy: s, Helpfulness: h})
	}

	c.MainStrategiesToRate = toRate
	c.MainStrategiesHelpfulness = pairs
	return c
}
