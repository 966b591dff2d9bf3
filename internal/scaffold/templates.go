package scaffold

// The templates are indented for readability next to their Go
// surroundings; Dedent strips the shared indentation at render time.

const cmakeListsTemplate = `
    cmake_minimum_required(VERSION {{ .CMakeVersion }})
    project({{ .Name }} LANGUAGES C)

    add_library({{ .Name }} SHARED src/{{ .Name }}.c)
    set_target_properties({{ .Name }} PROPERTIES PREFIX "" SUFFIX ".node")
    target_include_directories({{ .Name }} PRIVATE "${CMAKE_SOURCE_DIR}/{{ .RuntimeDir }}/include/node")
    target_compile_definitions({{ .Name }} PRIVATE NAPI_VERSION={{ .NapiVersion }})
    {{- if .IsWindows }}
    target_link_libraries({{ .Name }} "${CMAKE_SOURCE_DIR}/{{ .RuntimeDir }}/lib/node.lib")
    {{- end }}
    {{- if .IsDarwin }}
    target_link_options({{ .Name }} PRIVATE -undefined dynamic_lookup)
    {{- end }}
`

const sourceTemplate = `
    #include <node_api.h>

    static napi_value init(napi_env env, napi_value exports) {
      napi_value greeting;
      napi_create_string_utf8(env, "Hello from {{ .Name }}!", NAPI_AUTO_LENGTH, &greeting);
      return greeting;
    }

    NAPI_MODULE({{ .Name | snakecase }}, init)
`

const ignoreTemplate = `
    build/
    node-v*/
    .vscode/
    .idea/
    .DS_Store
`
