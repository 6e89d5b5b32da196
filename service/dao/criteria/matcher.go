package criteria

import (
	"github.com/viant/procman/model/process"
	"github.com/viant/procman/service/dao"
)

// StateParameter names the parameter FilterByState inspects
const StateParameter = "State"

// FilterByState reports whether state matches the State parameter, if any
func FilterByState(state process.State, parameters []*dao.Parameter) bool {
	parameter, ok := dao.Lookup(parameters, StateParameter)
	if !ok {
		return true
	}
	switch actual := parameter.Value.(type) {
	case string:
		return string(state) == actual
	case process.State:
		return state == actual
	case []string:
		for _, s := range actual {
			if string(state) == s {
				return true
			}
		}
		return false
	case []process.State:
		if len(actual) == 0 {
			return true
		}
		for _, s := range actual {
			if state == s {
				return true
			}
		}
		return false
	}
	return true
}
