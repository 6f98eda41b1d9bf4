package emit

// Literal text blocks of the generated header. Placeholders are positional:
// %[1]s is always the user-supplied prefix. The blocks reproduce the gl3w
// style loader glue; they are selected verbatim, never computed per symbol.

// headerGuard opens the generated file. %016x is the generation digest.
const headerGuard = `#ifndef INCLUDE_OPENGL_GENERATED_H
#define INCLUDE_OPENGL_GENERATED_H

// NOTE: This file is generated automatically. Do not edit.
// @GENERATED: %016x

`

// versionStruct declares the prefixed version struct and init entry point.
const versionStruct = `typedef struct %[1]sOpenGLVersion
{
  int Major;
  int Minor;
} %[1]sOpenGLVersion;
// Call this function to initialize OpenGL.
// Example:
//
//    %[1]sOpenGLVersion Version;
//    %[1]sOpenGLInit(&Version);
//    if(Version.Major < 3)
//    {
//       printf("OpenGL 3 or above required.\n");
//       return 0;
//    }
//
static void %[1]sOpenGLInit(%[1]sOpenGLVersion* Version);


`

// baseTypedefs is emitted unconditionally: the scalar types the vendor
// declarations are written in terms of, independent of discovered symbols.
const baseTypedefs = `#ifndef APIENTRY
#define APIENTRY
#endif
#ifndef APIENTRYP
#define APIENTRYP APIENTRY *
#endif
#ifndef GLAPI
#define GLAPI extern
#endif

typedef void GLvoid;
typedef unsigned int GLenum;
typedef float GLfloat;
typedef int GLint;
typedef int GLsizei;
typedef unsigned int GLbitfield;
typedef double GLdouble;
typedef unsigned int GLuint;
typedef unsigned char GLboolean;
typedef unsigned char GLubyte;
typedef char GLchar;
typedef short GLshort;
typedef signed char GLbyte;
typedef unsigned short GLushort;
typedef ptrdiff_t GLsizeiptr;
typedef ptrdiff_t GLintptr;
typedef float GLclampf;
typedef double GLclampd;
typedef unsigned short GLhalf;

`

// debugProcTypedef is constant, not discovered: debug callbacks are
// registered by pointer and have no registry declaration line of their own.
const debugProcTypedef = "typedef void (APIENTRY *GLDEBUGPROC)(GLenum source,GLenum type,GLuint id,GLenum severity,GLsizei length,const GLchar *message,const void *userParam);\n"

// loaderRoutines is the per-platform dynamic-library glue. All three
// platforms are emitted behind preprocessor guards; the target's compiler
// selects one.
const loaderRoutines = `

typedef void (*%[1]sOpenGLProc)(void);

#ifdef _WIN32
static HMODULE %[1]sOpenGLHandle;
static void %[1]sLoadOpenGL()
{
  %[1]sOpenGLHandle = LoadLibraryA("opengl32.dll");
}
static void %[1]sUnloadOpenGL()
{
  FreeLibrary(%[1]sOpenGLHandle);
}
static %[1]sOpenGLProc %[1]sOpenGLGetProc(const char *proc)
{
  %[1]sOpenGLProc Result = (%[1]sOpenGLProc)wglGetProcAddress(proc);
  if (!Result)
    Result = (%[1]sOpenGLProc)GetProcAddress(%[1]sOpenGLHandle, proc);
  return Result;
}
#elif defined(__APPLE__) || defined(__APPLE_CC__)
#include <Carbon/Carbon.h>

static CFBundleRef GEN_Bundle;
static CFURLRef GEN_BundleURL;

static void %[1]sLoadOpenGL()
{
  GEN_BundleURL = CFURLCreateWithFileSystemPath(kCFAllocatorDefault,
    CFSTR("/System/Library/Frameworks/OpenGL.framework"),
    kCFURLPOSIXPathStyle, 1);
  GEN_Bundle = CFBundleCreate(kCFAllocatorDefault, GEN_BundleURL);
}
static void %[1]sUnloadOpenGL()
{
  CFRelease(GEN_Bundle);
  CFRelease(GEN_BundleURL);
}
static %[1]sOpenGLProc %[1]sOpenGLGetProc(const char *proc)
{
  CFStringRef ProcName = CFStringCreateWithCString(kCFAllocatorDefault, proc,
    kCFStringEncodingASCII);
  %[1]sOpenGLProc Result = (%[1]sOpenGLProc) CFBundleGetFunctionPointerForName(GEN_Bundle, ProcName);
  CFRelease(ProcName);
  return Result;
}
#else
#include <dlfcn.h>

static void *%[1]sOpenGLHandle;
typedef void (*__GLXextproc)(void);
typedef __GLXextproc (* PFNGLXGETPROCADDRESSPROC) (const GLubyte *procName);
static PFNGLXGETPROCADDRESSPROC glx_get_proc_address;
static void %[1]sLoadOpenGL()
{
  %[1]sOpenGLHandle = dlopen("libGL.so.1", RTLD_LAZY | RTLD_GLOBAL);
  glx_get_proc_address = (PFNGLXGETPROCADDRESSPROC) dlsym(%[1]sOpenGLHandle, "glXGetProcAddressARB");
}
static void %[1]sUnloadOpenGL()
{
  dlclose(%[1]sOpenGLHandle);
}
static %[1]sOpenGLProc %[1]sOpenGLGetProc(const char *proc)
{
  %[1]sOpenGLProc Result = (%[1]sOpenGLProc) glx_get_proc_address((const GLubyte *) proc);
  if (!Result)
    Result = (%[1]sOpenGLProc) dlsym(%[1]sOpenGLHandle, proc);
  return Result;
}
#endif

`

// initHead opens the init function body.
const initHead = `

void %[1]sOpenGLInit(%[1]sOpenGLVersion* Version)
{
  %[1]sLoadOpenGL();

`

// initTail unloads the library and queries the context version through the
// seed symbols, which is why those are mandatory in every generated header.
const initTail = `
  %[1]sUnloadOpenGL();

  Version->Major = 0;
  Version->Minor = 0;
  if (glGetIntegerv)
  {
    glGetIntegerv(GL_MAJOR_VERSION, &Version->Major);
    glGetIntegerv(GL_MINOR_VERSION, &Version->Minor);
  }
}

`

// headerGuardEnd closes the include guard.
const headerGuardEnd = "#endif // INCLUDE_OPENGL_GENERATED_H\n"

// procPrefix renames each function's storage so the generated pointer
// variable never collides with the vendor's own declaration of the plain
// symbol name.
const procPrefix = "GEN_"
