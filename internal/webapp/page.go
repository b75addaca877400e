package webapp

// PageHTML is the demo application's main page. It emits a burst of
// console events on load and exposes two buttons: one that counts
// clicks and one that intentionally raises an uncaught error, so the
// harness has console output to capture and elements to click.
const PageHTML = `<!DOCTYPE html>
<html>
<head>
    <title>app_tail demo</title>
    <style>
        * { box-sizing: border-box; }
        body {
            font-family: system-ui, -apple-system, sans-serif;
            padding: 40px;
            background: linear-gradient(135deg, #1a1a2e 0%, #16213e 100%);
            color: #eee;
            min-height: 100vh;
            margin: 0;
        }
        .container { max-width: 800px; margin: 0 auto; }
        h1 { color: #4ecca3; margin-bottom: 10px; }
        .subtitle { color: #888; margin-bottom: 30px; }
        .card {
            background: rgba(255,255,255,0.05);
            border-radius: 8px;
            padding: 20px;
            margin-bottom: 20px;
        }
        .card h2 { color: #4ecca3; margin-top: 0; font-size: 18px; }
        button {
            font-size: 16px;
            padding: 10px 20px;
            border: none;
            border-radius: 6px;
            cursor: pointer;
            margin-right: 10px;
        }
        #counter-button { background: #4ecca3; color: #16213e; }
        #error-button { background: #eb4d4b; color: #fff; }
        #click-count {
            font-size: 48px;
            color: #4ecca3;
            font-weight: bold;
        }
        a { color: #74b9ff; }
    </style>
</head>
<body>
    <div class="container">
        <h1>app_tail demo</h1>
        <p class="subtitle">This page generates console events for the harness to capture</p>

        <div class="card">
            <h2>Clicks</h2>
            <div id="click-count">0</div>
            <button id="counter-button">Count a click</button>
            <button id="error-button">Trigger an error</button>
        </div>

        <div class="card">
            <h2>Pages</h2>
            <p><a href="/about">About</a> &middot; <a href="/broken">Broken route</a></p>
        </div>
    </div>

    <script>
        let clicks = 0;
        const countEl = document.getElementById('click-count');

        // Initial burst of events
        console.log('[demo] Page loaded successfully');
        console.info('[demo] app_tail demo is running');
        console.warn('[demo] This is a warning message');
        console.error('[demo] This is an error message');

        document.getElementById('counter-button').addEventListener('click', () => {
            clicks++;
            countEl.textContent = clicks;
            console.log('[demo] Click #' + clicks);
        });

        document.getElementById('error-button').addEventListener('click', () => {
            console.error('[demo] Error button clicked, throwing...');
            throw new Error('[demo] Intentional uncaught error');
        });
    </script>
</body>
</html>`

// AboutHTML is a second page so navigation has somewhere to go.
const AboutHTML = `<!DOCTYPE html>
<html>
<head>
    <title>app_tail demo - about</title>
    <style>
        body { font-family: system-ui; padding: 40px; background: #1a1a2e; color: #eee; }
        .status { color: #4ecca3; font-size: 24px; }
        .info { color: #888; margin-top: 20px; }
        a { color: #74b9ff; }
    </style>
</head>
<body>
    <h1 class="status">app_tail demo application</h1>
    <p class="info">A tiny web app supervised by the app_tail control process.</p>
    <p class="info"><a href="/">Back to the demo page</a></p>
    <script>
        console.log('[demo] About page loaded');
    </script>
</body>
</html>`
