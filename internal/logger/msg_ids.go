package logger

// Warnings carry a message ID so that they can be identified in the output
// and silenced by tooling. Errors do not get an ID because an error cannot be
// turned into a non-error.
type MsgID = uint8

const (
	MsgID_None MsgID = iota

	// Lexing
	MsgID_JS_HTMLCommentInJS

	// Suspicious expressions
	MsgID_JS_EqualsNaN
	MsgID_JS_EqualsNegativeZero
	MsgID_JS_EqualsNewObject
	MsgID_JS_ImpossibleTypeof
	MsgID_JS_SuspiciousBooleanNot

	MsgID_END // Keep this at the end
)

func MsgIDToString(id MsgID) string {
	switch id {
	case MsgID_JS_HTMLCommentInJS:
		return "html-comment-in-js"
	case MsgID_JS_EqualsNaN:
		return "equals-nan"
	case MsgID_JS_EqualsNegativeZero:
		return "equals-negative-zero"
	case MsgID_JS_EqualsNewObject:
		return "equals-new-object"
	case MsgID_JS_ImpossibleTypeof:
		return "impossible-typeof"
	case MsgID_JS_SuspiciousBooleanNot:
		return "suspicious-boolean-not"
	}

	return ""
}

func StringToMsgID(str string) (MsgID, bool) {
	for id := MsgID_None + 1; id < MsgID_END; id++ {
		if MsgIDToString(id) == str {
			return id, true
		}
	}
	return MsgID_None, false
}
