package dom

type Kind int

const (
	KindNone Kind = iota

	// Stem members
	KindRoot
	KindUsing
	KindNamespace

	// Types
	KindClass
	KindStructure
	KindInterface
	KindEnum
	KindEnumMember

	// Type members
	KindField
	KindProperty
	KindMethod
	KindConstructor
	KindParameter
	KindTypeParameter

	// Statements
	KindBlock
	KindExpressionStatement
	KindReturn
	KindDeclaration
	KindIf
	KindElse
	KindWhile
	KindDo
	KindFor
	KindForEach
	KindTry
	KindCatch
	KindFinally
	KindBreak
	KindContinue
	KindThrow
	KindEmpty

	KindExpression
)

var kindNames = map[Kind]string{
	KindNone:                "None",
	KindRoot:                "Root",
	KindUsing:               "Using",
	KindNamespace:           "Namespace",
	KindClass:               "Class",
	KindStructure:           "Structure",
	KindInterface:           "Interface",
	KindEnum:                "Enum",
	KindEnumMember:          "EnumMember",
	KindField:               "Field",
	KindProperty:            "Property",
	KindMethod:              "Method",
	KindConstructor:         "Constructor",
	KindParameter:           "Parameter",
	KindTypeParameter:       "TypeParameter",
	KindBlock:               "Block",
	KindExpressionStatement: "ExpressionStatement",
	KindReturn:              "Return",
	KindDeclaration:         "Declaration",
	KindIf:                  "If",
	KindElse:                "Else",
	KindWhile:               "While",
	KindDo:                  "Do",
	KindFor:                 "For",
	KindForEach:             "ForEach",
	KindTry:                 "Try",
	KindCatch:               "Catch",
	KindFinally:             "Finally",
	KindBreak:               "Break",
	KindContinue:            "Continue",
	KindThrow:               "Throw",
	KindEmpty:               "Empty",
	KindExpression:          "Expression",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
