package stubgen

import (
	"testing"
)

func TestIntrospectPackage_Strings(t *testing.T) {
	model, err := IntrospectPackage("strings", nil)
	if err != nil {
		t.Fatalf("IntrospectPackage(strings): %v", err)
	}

	if model.ImportPath != "strings" {
		t.Errorf("expected import path 'strings', got %q", model.ImportPath)
	}
	if model.Name != "strings" {
		t.Errorf("expected package name 'strings', got %q", model.Name)
	}

	foundBuilder := false
	foundReader := false
	for _, tp := range model.Types {
		switch tp.Name {
		case "Builder":
			foundBuilder = true
			foundWriteString := false
			for _, m := range tp.Methods {
				if m.Name == "WriteString" {
					foundWriteString = true
					if m.Arity != 1 {
						t.Errorf("WriteString: expected arity 1, got %d", m.Arity)
					}
				}
			}
			if !foundWriteString {
				t.Error("expected Builder to have WriteString method")
			}
		case "Reader":
			foundReader = true
		}
	}
	if !foundBuilder {
		t.Error("expected to find Builder type")
	}
	if !foundReader {
		t.Error("expected to find Reader type")
	}
}

func TestIntrospectPackage_WithFilter(t *testing.T) {
	filter := map[string]bool{"Builder": true}
	model, err := IntrospectPackage("strings", filter)
	if err != nil {
		t.Fatalf("IntrospectPackage(strings, filter): %v", err)
	}

	if len(model.Types) != 1 {
		t.Fatalf("expected 1 type with filter, got %d", len(model.Types))
	}
	if model.Types[0].Name != "Builder" {
		t.Errorf("expected Builder, got %q", model.Types[0].Name)
	}
}

func TestIntrospectPackage_SkipsVariadicMethods(t *testing.T) {
	model, err := IntrospectPackage("log", nil)
	if err != nil {
		t.Fatalf("IntrospectPackage(log): %v", err)
	}

	var logger *TypeModel
	for i := range model.Types {
		if model.Types[i].Name == "Logger" {
			logger = &model.Types[i]
		}
	}
	if logger == nil {
		t.Fatal("expected to find Logger type")
	}

	foundOutput := false
	for _, m := range logger.Methods {
		switch m.Name {
		case "Printf", "Println", "Fatalf":
			t.Errorf("variadic method %s should be excluded", m.Name)
		case "Output":
			foundOutput = true
		}
	}
	if !foundOutput {
		t.Error("expected Logger to keep Output method")
	}
}

func TestIntrospectPackage_SkipsGenericTypes(t *testing.T) {
	model, err := IntrospectPackage("sync/atomic", nil)
	if err != nil {
		t.Fatalf("IntrospectPackage(sync/atomic): %v", err)
	}

	foundValue := false
	for _, tp := range model.Types {
		switch tp.Name {
		case "Value":
			foundValue = true
		case "Pointer":
			t.Error("generic Pointer type should be excluded")
		}
	}
	if !foundValue {
		t.Error("expected to find Value type")
	}
}

func TestIntrospectPackage_SkipsPromotedMethods(t *testing.T) {
	model, err := IntrospectPackage("bufio", nil)
	if err != nil {
		t.Fatalf("IntrospectPackage(bufio): %v", err)
	}

	foundReader := false
	for _, tp := range model.Types {
		switch tp.Name {
		case "Reader":
			foundReader = true
		case "ReadWriter":
			// Every ReadWriter method is promoted from an embedded field.
			t.Error("ReadWriter has no directly defined methods and should be excluded")
		}
	}
	if !foundReader {
		t.Error("expected to find Reader type")
	}
}

func TestIntrospectPackage_BadPath(t *testing.T) {
	_, err := IntrospectPackage("nonexistent/package/path", nil)
	if err == nil {
		t.Error("expected error for nonexistent package")
	}
}
