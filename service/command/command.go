package command

import (
	"strconv"
	"strings"

	"github.com/viant/parsly"
	"github.com/viant/procman/model/types"
)

// Kind identifies a shell command
type Kind string

const (
	KindInit     Kind = "init"
	KindCreate   Kind = "cr"
	KindDestroy  Kind = "de"
	KindRequest  Kind = "req"
	KindRelease  Kind = "rel"
	KindTimeout  Kind = "to"
	KindInfo     Kind = "info"
	KindResource Kind = "res"
	KindList     Kind = "ls"
	KindQuit     Kind = "quit"
)

var aliases = map[string]Kind{
	"init": KindInit,
	"cr":   KindCreate,
	"de":   KindDestroy,
	"req":  KindRequest,
	"rel":  KindRelease,
	"to":   KindTimeout,
	"info": KindInfo,
	"res":  KindResource,
	"ls":   KindList,
	"quit": KindQuit,
	"exit": KindQuit,
}

// Command is a parsed shell line
type Command struct {
	Kind     Kind
	Name     string
	Priority int
	Units    int
}

// Mutating reports whether the command changes engine state
func (c *Command) Mutating() bool {
	switch c.Kind {
	case KindInit, KindCreate, KindDestroy, KindRequest, KindRelease, KindTimeout:
		return true
	}
	return false
}

// Parse parses a single line. A blank line yields a nil command.
func Parse(line string) (*Command, error) {
	cursor := parsly.NewCursor("", []byte(line), 0)
	matched := cursor.MatchAfterOptional(whitespaceToken, wordToken)
	switch matched.Code {
	case wordCode:
	case parsly.EOF:
		return nil, nil
	default:
		return nil, types.ErrInvalidCommand.GenWithStackByArgs(line, cursor.NewError(wordToken).Error())
	}
	keyword := strings.ToLower(matched.Text(cursor))
	kind, ok := aliases[keyword]
	if !ok {
		return nil, types.ErrInvalidCommand.GenWithStackByArgs(line, "unknown command "+keyword)
	}
	ret := &Command{Kind: kind}
	var err error
	switch kind {
	case KindCreate:
		if ret.Name, err = matchName(cursor, line); err != nil {
			return nil, err
		}
		if ret.Priority, err = matchNumber(cursor, line, "priority", false); err != nil {
			return nil, err
		}
	case KindDestroy, KindInfo, KindResource:
		if ret.Name, err = matchName(cursor, line); err != nil {
			return nil, err
		}
	case KindRequest, KindRelease:
		if ret.Name, err = matchName(cursor, line); err != nil {
			return nil, err
		}
		if ret.Units, err = matchNumber(cursor, line, "units", true); err != nil {
			return nil, err
		}
	}
	if matched = cursor.MatchAfterOptional(whitespaceToken, wordToken); matched.Code != parsly.EOF {
		return nil, types.ErrInvalidCommand.GenWithStackByArgs(line, "unexpected argument "+matched.Text(cursor))
	}
	return ret, nil
}

// matchName matches a process or resource name
func matchName(cursor *parsly.Cursor, line string) (string, error) {
	matched := cursor.MatchAfterOptional(whitespaceToken, wordToken)
	if matched.Code != wordCode {
		return "", types.ErrInvalidCommand.GenWithStackByArgs(line, "missing name")
	}
	return matched.Text(cursor), nil
}

// matchNumber matches an integer argument; optional arguments default to 1
func matchNumber(cursor *parsly.Cursor, line, label string, optional bool) (int, error) {
	matched := cursor.MatchAfterOptional(whitespaceToken, numberToken)
	switch matched.Code {
	case numberCode:
		value, err := strconv.Atoi(matched.Text(cursor))
		if err != nil {
			return 0, types.ErrInvalidCommand.GenWithStackByArgs(line, "invalid "+label)
		}
		return value, nil
	case parsly.EOF:
		if optional {
			return 1, nil
		}
	}
	return 0, types.ErrInvalidCommand.GenWithStackByArgs(line, "invalid or missing "+label)
}
