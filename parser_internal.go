package optbook

import (
	"strings"

	"github.com/napalu/optbook/errs"
	"github.com/napalu/optbook/i18n"
	"github.com/napalu/optbook/internal/util"
	"github.com/napalu/optbook/types/queue"
)

func (p *Parser) scan(args []string) (*ParseResult, error) {
	groups := p.Groups()
	result := newParseResult(groups)
	pending := queue.From(args...)

	for !pending.IsEmpty() {
		token, _ := pending.Dequeue()

		if !IsOptionName(token) {
			p.logger.Debug("positional", "token", token)
			result.positionals = append(result.positionals, token)
			continue
		}

		if err := p.processOption(token, pending, result); err != nil {
			return nil, err
		}
	}

	if err := p.validateRequired(result); err != nil {
		return nil, err
	}

	return result, nil
}

func (p *Parser) processOption(token string, pending *queue.Q[string], result *ParseResult) error {
	key, value, hasValue := SplitOptionName(token)

	option, found := result.lookup(key)
	if !found {
		return p.fail(p.unrecognized(key))
	}

	if !option.HasArguments() {
		for _, rec := range result.recorded {
			if rec.key != key && (rec.option.Equal(option) || option.Matches(rec.key)) {
				return p.fail(errs.ErrOptionAlreadyAddedAs.WithArgs(key, rec.key))
			}
		}
	}

	if hasValue {
		if value == "" {
			return p.fail(errs.ErrOptionExpectsArgument.WithArgs(token))
		}
		if !option.HasArguments() {
			return p.fail(errs.ErrOptionDoesNotTakeArguments.WithArgs(key))
		}
		p.logger.Debug("option", "key", key, "value", value)
		result.options = append(result.options, token)
		result.record(key, option)
		return nil
	}

	result.options = append(result.options, token)
	result.record(key, option)

	if !option.HasArguments() {
		p.logger.Debug("option", "key", key)
		return nil
	}

	argument, ok := pending.Front()
	if !ok || IsOptionName(argument) {
		return p.fail(errs.ErrOptionExpectsArgument.WithArgs(token))
	}
	pending.Dequeue()
	p.logger.Debug("option", "key", key, "argument", argument)
	result.options = append(result.options, argument)

	return nil
}

func (p *Parser) validateRequired(result *ParseResult) error {
	for _, g := range result.groups {
		for _, option := range g.Options() {
			if !option.IsRequired() {
				continue
			}
			if _, found := result.occurrence(option); !found {
				return p.fail(errs.ErrOptionIsRequiredButNotAdded.WithArgs(option.Name()))
			}
		}
	}

	return nil
}

func (p *Parser) unrecognized(key string) i18n.TranslatableError {
	err := errs.ErrUnrecognizedOption.WithArgs(key)

	suggestions := util.FindSimilar(key, p.registeredNames(), p.suggestionThreshold)
	if len(suggestions) == 0 {
		return err
	}

	return err.Wrap(errs.ErrDidYouMean.WithArgs(strings.Join(suggestions, ", ")))
}

func (p *Parser) registeredNames() []string {
	var names []string
	for _, g := range p.groups {
		for _, option := range g.Options() {
			names = append(names, option.Names()...)
			if option.IsNegatable() {
				names = append(names, option.NegatedName())
			}
		}
	}

	return names
}

// fail attaches the caller's source location when enabled
func (p *Parser) fail(err i18n.TranslatableError) error {
	if p.sourceLocation {
		return err.At(errs.Locate(1))
	}

	return err
}
