package token

// keywordList enumerates every word the classifier recognizes.
var keywordList = [...]struct {
	text string
	kind Kind
}{
	{"abstract", KwAbstract},
	{"accessor", KwAccessor},
	{"any", KwAny},
	{"as", KwAs},
	{"assert", KwAssert},
	{"asserts", KwAsserts},
	{"async", KwAsync},
	{"await", KwAwait},
	{"bigint", KwBigint},
	{"boolean", KwBoolean},
	{"break", KwBreak},
	{"case", KwCase},
	{"catch", KwCatch},
	{"class", KwClass},
	{"const", KwConst},
	{"constructor", KwConstructor},
	{"continue", KwContinue},
	{"debugger", KwDebugger},
	{"declare", KwDeclare},
	{"default", KwDefault},
	{"delete", KwDelete},
	{"do", KwDo},
	{"else", KwElse},
	{"enum", KwEnum},
	{"export", KwExport},
	{"extends", KwExtends},
	{"false", KwFalse},
	{"finally", KwFinally},
	{"for", KwFor},
	{"from", KwFrom},
	{"function", KwFunction},
	{"get", KwGet},
	{"global", KwGlobal},
	{"if", KwIf},
	{"implements", KwImplements},
	{"import", KwImport},
	{"in", KwIn},
	{"infer", KwInfer},
	{"instanceof", KwInstanceof},
	{"interface", KwInterface},
	{"intrinsic", KwIntrinsic},
	{"is", KwIs},
	{"keyof", KwKeyof},
	{"let", KwLet},
	{"meta", KwMeta},
	{"module", KwModule},
	{"namespace", KwNamespace},
	{"never", KwNever},
	{"new", KwNew},
	{"null", KwNull},
	{"number", KwNumber},
	{"object", KwObject},
	{"of", KwOf},
	{"out", KwOut},
	{"override", KwOverride},
	{"package", KwPackage},
	{"private", KwPrivate},
	{"protected", KwProtected},
	{"public", KwPublic},
	{"readonly", KwReadonly},
	{"require", KwRequire},
	{"return", KwReturn},
	{"satisfies", KwSatisfies},
	{"set", KwSet},
	{"static", KwStatic},
	{"string", KwString},
	{"super", KwSuper},
	{"switch", KwSwitch},
	{"symbol", KwSymbol},
	{"target", KwTarget},
	{"this", KwThis},
	{"throw", KwThrow},
	{"true", KwTrue},
	{"try", KwTry},
	{"type", KwType},
	{"typeof", KwTypeof},
	{"undefined", KwUndefined},
	{"unique", KwUnique},
	{"unknown", KwUnknown},
	{"var", KwVar},
	{"void", KwVoid},
	{"while", KwWhile},
	{"with", KwWith},
	{"yield", KwYield},
}
