package validate

import (
	"sealgen/internal/model"
)

const petsPkg = "example.com/pets"

func str() []model.TypeRef { return []model.TypeRef{model.Ref("string")} }

func petBlueprint() *model.Blueprint {
	return &model.Blueprint{
		PkgPath: petsPkg,
		PkgName: "pets",
		Name:    "PetDef",
		Methods: []model.Method{{Name: "Sound", Results: str(), PkgPath: petsPkg}},
		Options: model.Options{RootName: "Pet", Strict: true, Modes: model.ModeBoth},
	}
}

func variant(name string, methods ...model.Method) *model.Variant {
	for i := range methods {
		if methods[i].PkgPath == "" {
			methods[i].PkgPath = petsPkg
		}
	}

	return &model.Variant{
		PkgPath: petsPkg,
		PkgName: "pets",
		Name:    name,
		Access:  model.AccessPublic,
		Methods: methods,
	}
}

func unexported(name string, methods ...model.Method) *model.Variant {
	v := variant(name, methods...)
	v.Access = model.AccessPackage

	return v
}

func sound() model.Method {
	return model.Method{Name: "Sound", Results: str()}
}

func withParams(m model.Method, params ...string) model.Method {
	for _, p := range params {
		m.Params = append(m.Params, model.Param{Type: model.Ref(p)})
	}

	return m
}

func generic(v *model.Variant) *model.Variant {
	v.TypeParams = []model.TypeParam{{Name: "T", Constraint: model.Ref("any")}}
	return v
}

func genericBlueprint() *model.Blueprint {
	bp := petBlueprint()
	bp.Name = "ResultDef"
	bp.TypeParams = []model.TypeParam{{Name: "T", Constraint: model.Ref("any")}}

	return bp
}
